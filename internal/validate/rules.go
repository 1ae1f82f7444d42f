package validate

import (
	"fmt"

	"github.com/rileyhilliard/icp/internal/mode"
)

// RuleID names a rule. IDs are stable and appear in ValidationError.
type RuleID string

const (
	RuleNetworkOrEnvironmentNotBoth       RuleID = "network-or-environment-not-both"
	RuleCanisterPrincipalRequiredInGlobal RuleID = "canister-principal-required-in-global-mode"
	RuleEnvironmentUnavailableInGlobal    RuleID = "environment-unavailable-in-global-mode"
	RuleNetworkURLRequiredInGlobal        RuleID = "network-url-required-in-global-mode"
	RuleNetworkNameRequiredInProject      RuleID = "network-name-required-in-project-mode"
	RuleFromAndToMustDiffer               RuleID = "from-and-to-must-differ"
)

// Rule is a named, pure check. Check must be deterministic and side-effect
// free; it reports a diagnostic and true when the arguments are rejected.
type Rule struct {
	ID RuleID

	check   func(bundle any, m mode.Mode) (Diagnostic, bool)
	applies func(bundle any) bool
}

// NewRule builds a rule over the view T. The rule applies to any bundle
// type that implements T.
func NewRule[T any](id RuleID, check func(view T, m mode.Mode) (Diagnostic, bool)) Rule {
	return Rule{
		ID: id,
		check: func(bundle any, m mode.Mode) (Diagnostic, bool) {
			view, ok := bundle.(T)
			if !ok {
				panic(fmt.Sprintf("validate: rule %s evaluated against %T", id, bundle))
			}
			return check(view, m)
		},
		applies: func(bundle any) bool {
			_, ok := bundle.(T)
			return ok
		},
	}
}

// Check evaluates the rule. It panics if bundle does not provide the rule's view.
func (r Rule) Check(bundle any, m mode.Mode) (Diagnostic, bool) {
	return r.check(bundle, m)
}

// AppliesTo reports whether bundle provides the view the rule reads.
func (r Rule) AppliesTo(bundle any) bool {
	return r.applies(bundle)
}

var (
	NetworkOrEnvironmentNotBothRule = NewRule(RuleNetworkOrEnvironmentNotBoth,
		func(a HasNetworkAndEnvironment, _ mode.Mode) (Diagnostic, bool) {
			return NetworkOrEnvironmentNotBoth, a.NetworkArg() != nil && a.EnvironmentArg() != nil
		})

	CanisterPrincipalRequiredInGlobalRule = NewRule(RuleCanisterPrincipalRequiredInGlobal,
		func(a HasCanister, m mode.Mode) (Diagnostic, bool) {
			return CanisterPrincipalRequiredInGlobalMode, m.IsGlobal() && !a.CanisterArg().IsPrincipal()
		})

	EnvironmentUnavailableInGlobalRule = NewRule(RuleEnvironmentUnavailableInGlobal,
		func(a HasEnvironment, m mode.Mode) (Diagnostic, bool) {
			return EnvironmentsUnavailableInGlobalMode, m.IsGlobal() && a.EnvironmentArg() != nil
		})

	// An absent network is allowed: global mode falls back to the
	// configured default URL.
	NetworkURLRequiredInGlobalRule = NewRule(RuleNetworkURLRequiredInGlobal,
		func(a HasNetwork, m mode.Mode) (Diagnostic, bool) {
			n := a.NetworkArg()
			return NetworkURLRequiredInGlobalMode, m.IsGlobal() && n != nil && !n.IsURL()
		})

	// An absent network is allowed: project mode falls back to the
	// project's default network.
	NetworkNameRequiredInProjectRule = NewRule(RuleNetworkNameRequiredInProject,
		func(a HasNetwork, m mode.Mode) (Diagnostic, bool) {
			n := a.NetworkArg()
			return NetworkNameRequiredInProjectMode, m.IsProject() && n != nil && !n.IsName()
		})

	FromAndToMustDifferRule = NewRule(RuleFromAndToMustDiffer,
		func(a HasSenderAndReceiver, _ mode.Mode) (Diagnostic, bool) {
			return FromAndToMustDiffer, a.FromArg() == a.ToArg()
		})
)

// GeneralRules returns the shared rules in evaluation order. The
// mutual-exclusion rule comes first so that supplying both a network and
// an environment is always reported as such. The network shape rules run
// before the target and environment rules.
func GeneralRules() []Rule {
	return []Rule{
		NetworkOrEnvironmentNotBothRule,
		NetworkURLRequiredInGlobalRule,
		NetworkNameRequiredInProjectRule,
		CanisterPrincipalRequiredInGlobalRule,
		EnvironmentUnavailableInGlobalRule,
	}
}
