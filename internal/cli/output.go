package cli

import (
	"github.com/rileyhilliard/icp/internal/command"
	"github.com/rileyhilliard/icp/internal/ui"
)

// spinnerEnabled is false in tests so output stays deterministic.
var spinnerEnabled = true

// runOperation calls fn under a spinner unless output is quiet, machine
// readable, or a dry run (nothing is invoked then).
func runOperation(c *command.Context, label string, fn func() error) error {
	if !spinnerEnabled || c.DryRun || quietFlag || MachineMode() {
		return fn()
	}
	return ui.NewSpinner(label).Run(fn)
}
