// Package app wires the application together: it configures logging, loads
// the assembly manifest, binds manifest component types to the built-in
// module catalog, and drives the registry through build, reporting, and
// teardown.
package app
