// Package registry is the component orchestrator. A Registry collects named
// component declarations (factory, dependency names, config bag, optional
// init and destroy hooks), computes a dependency-driven build order, detects
// circular dependencies before any factory runs, constructs each component
// strictly one at a time with its resolved collaborators, applies a declared
// post-init wiring pass, and tears everything down in reverse build order.
//
// A Registry is an explicitly constructed, explicitly owned object; there is
// no ambient global instance. Callers must serialize Build and Destroy on a
// single Registry. Get and GetAll are safe for concurrent use once Build has
// returned.
package registry
