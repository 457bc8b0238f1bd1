// Package manifest loads component assembly manifests written in HCL. A
// manifest declares which component instances to build, their dependency
// names, an opaque config bag per instance, and the post-init wiring rules
// joining them. The factory behind each component type is registered in Go;
// the manifest only references it by type name.
package manifest
