package parser

import (
	"github.com/hashicorp/hcl/v2"
)

// Diagnostics projects the accumulated parse errors into hcl.Diagnostics
// so frontends can reuse the standard diagnostic text writer. Every entry
// is an error severity; the engine records no warnings.
func (o *Outcome) Diagnostics() hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, e := range o.Errors {
		d := &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  e.Kind.String(),
			Detail:   e.Error(),
		}
		diags = append(diags, d)
	}
	return diags
}
