package manifest

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes all top-level blocks from one manifest file.
type fileRoot struct {
	Commands []*commandBlock `hcl:"command,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

// commandBlock is the HCL-specific shape of a `command` block.
type commandBlock struct {
	Name    string         `hcl:"name,label"`
	Summary string         `hcl:"summary,optional"`
	Options []*optionBlock `hcl:"option,block"`
}

// optionBlock is the HCL-specific shape of an `option` block. Type and
// default stay as raw expressions; translation decides how to interpret
// them.
type optionBlock struct {
	Name        string         `hcl:"name,label"`
	Aliases     []string       `hcl:"aliases,optional"`
	Short       string         `hcl:"short,optional"`
	Type        hcl.Expression `hcl:"type,optional"`
	Description string         `hcl:"description,optional"`
	Required    bool           `hcl:"required,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
	Position    *int           `hcl:"position,optional"`
	Arity       *arityBlock    `hcl:"arity,block"`
}

// arityBlock bounds how many literal tokens an option consumes.
type arityBlock struct {
	Min *int `hcl:"min,optional"`
	Max *int `hcl:"max,optional"`
}
