// Package validate decides, before any network call, whether a command's
// arguments make sense in the current execution mode.
//
// Each command owns a Pipeline: its own custom rules first, then every
// general rule whose view the command's bundle provides, in GeneralRules
// order. Evaluation stops at the first rule that rejects the arguments and
// that rule's diagnostic is the one reported.
//
// Everything here is pure and allocation-light. Pipelines are immutable
// after construction and safe for concurrent use.
package validate

import (
	"fmt"

	"github.com/rileyhilliard/icp/internal/mode"
)

// ValidationError reports the single rule that rejected the arguments.
// Error returns the diagnostic text verbatim.
type ValidationError struct {
	Rule       RuleID
	Diagnostic Diagnostic
}

func (e *ValidationError) Error() string {
	return string(e.Diagnostic)
}

// Pipeline is the ordered rule list for one bundle type B.
type Pipeline[B any] struct {
	rules []Rule
}

// NewPipeline builds the pipeline for bundle type B. Custom rules run first
// in the order given and must all apply to B; it panics otherwise since that
// is a wiring mistake, not a user error. The general rules that apply to B
// follow in GeneralRules order.
func NewPipeline[B any](custom ...Rule) *Pipeline[B] {
	var zero B
	probe := any(zero)

	rules := make([]Rule, 0, len(custom)+len(GeneralRules()))
	for _, r := range custom {
		if !r.AppliesTo(probe) {
			panic(fmt.Sprintf("validate: custom rule %s does not apply to %T", r.ID, zero))
		}
		rules = append(rules, r)
	}
	for _, r := range GeneralRules() {
		if r.AppliesTo(probe) {
			rules = append(rules, r)
		}
	}
	return &Pipeline[B]{rules: rules}
}

// Rules returns the rule IDs in evaluation order.
func (p *Pipeline[B]) Rules() []RuleID {
	ids := make([]RuleID, len(p.rules))
	for i, r := range p.rules {
		ids[i] = r.ID
	}
	return ids
}

// Validate runs the rules in order and returns a *ValidationError for the
// first one that rejects bundle, or nil if all pass.
func (p *Pipeline[B]) Validate(bundle B, m mode.Mode) error {
	for _, r := range p.rules {
		if d, bad := r.Check(bundle, m); bad {
			return &ValidationError{Rule: r.ID, Diagnostic: d}
		}
	}
	return nil
}
