package manifest

import "github.com/hashicorp/hcl/v2"

// configBlock captures the raw body of a component's `config` block; its
// attributes are decoded into an opaque bag.
type configBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// componentBlock is a `component "TYPE" "NAME"` block from a manifest file.
type componentBlock struct {
	Type      string       `hcl:"component_type,label"`
	Name      string       `hcl:"instance_name,label"`
	DependsOn []string     `hcl:"depends_on,optional"`
	Config    *configBlock `hcl:"config,block"`
}

// wireBlock is a `wire` block declaring one post-init cross-reference.
type wireBlock struct {
	Target string `hcl:"target"`
	Source string `hcl:"source"`
	Field  string `hcl:"field"`
}

// fileSchema is the top-level structure of one manifest file.
type fileSchema struct {
	Components []*componentBlock `hcl:"component,block"`
	Wires      []*wireBlock      `hcl:"wire,block"`
}

// Component is the decoded, HCL-free form of one declared instance.
type Component struct {
	Type      string
	Name      string
	DependsOn []string
	Config    map[string]any
}

// Wire is the decoded form of one wiring rule.
type Wire struct {
	Target string
	Source string
	Field  string
}

// Manifest is everything declared across the loaded manifest files, in file
// order.
type Manifest struct {
	Components []Component
	Wires      []Wire
}
