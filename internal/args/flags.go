package args

import "github.com/spf13/pflag"

// NetworkFlag binds --network into an optional Network. The target stays nil
// until the flag is set.
type NetworkFlag struct {
	Target **Network
}

var _ pflag.Value = NetworkFlag{}

func (f NetworkFlag) String() string {
	if f.Target == nil || *f.Target == nil {
		return ""
	}
	return (*f.Target).Value()
}

func (f NetworkFlag) Set(s string) error {
	n := ParseNetwork(s)
	*f.Target = &n
	return nil
}

func (f NetworkFlag) Type() string {
	return "network"
}

// OptionalString binds a string flag whose absence must be distinguishable
// from an empty value.
type OptionalString struct {
	Target **string
}

var _ pflag.Value = OptionalString{}

func (f OptionalString) String() string {
	if f.Target == nil || *f.Target == nil {
		return ""
	}
	return **f.Target
}

func (f OptionalString) Set(s string) error {
	*f.Target = &s
	return nil
}

func (f OptionalString) Type() string {
	return "string"
}
