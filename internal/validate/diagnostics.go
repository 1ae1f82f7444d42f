package validate

// Diagnostic is a fixed, human-readable validation failure message.
// Messages never include runtime values, so tests compare them literally.
type Diagnostic string

const (
	CanisterPrincipalRequiredInGlobalMode Diagnostic = "Please provide a canister principal in global mode."
	NetworkOrEnvironmentNotBoth           Diagnostic = "Please provide either a network or an environment, but not both."
	EnvironmentsUnavailableInGlobalMode   Diagnostic = "Environments are not available in global mode."
	NetworkURLRequiredInGlobalMode        Diagnostic = "A network `url` is required in global mode."
	NetworkNameRequiredInProjectMode      Diagnostic = "A network `name` is required in project mode."
	FromAndToMustDiffer                   Diagnostic = "`from` and `to` cannot be the same IDs."
)

// Catalog returns every diagnostic a rule can emit.
func Catalog() []Diagnostic {
	return []Diagnostic{
		CanisterPrincipalRequiredInGlobalMode,
		NetworkOrEnvironmentNotBoth,
		EnvironmentsUnavailableInGlobalMode,
		NetworkURLRequiredInGlobalMode,
		NetworkNameRequiredInProjectMode,
		FromAndToMustDiffer,
	}
}

func (d Diagnostic) String() string {
	return string(d)
}
