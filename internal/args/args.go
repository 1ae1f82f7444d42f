// Package args holds the typed values that command-line arguments bind into:
// how a canister was addressed and how a network was specified.
//
// Construction from text never fails. A value that does not match the stricter
// form (a principal, or an http(s) URL) is kept as a symbolic name.
package args

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/icp/internal/principal"
)

// CanisterKind tells how a canister was addressed.
type CanisterKind int

const (
	// CanisterName is a symbolic name resolved through the project config.
	CanisterName CanisterKind = iota
	// CanisterPrincipal is a fully-qualified canister id.
	CanisterPrincipal
)

// Canister addresses the canister a lifecycle command acts on.
// The zero value is the empty name.
type Canister struct {
	kind      CanisterKind
	name      string
	principal principal.Principal
}

// CanisterByName returns a canister addressed by symbolic name.
func CanisterByName(name string) Canister {
	return Canister{kind: CanisterName, name: name}
}

// CanisterByPrincipal returns a canister addressed by id.
func CanisterByPrincipal(p principal.Principal) Canister {
	return Canister{kind: CanisterPrincipal, principal: p}
}

// ParseCanister treats text as a principal when it parses as one, and as a
// name otherwise.
func ParseCanister(text string) Canister {
	if p, err := principal.Parse(text); err == nil {
		return CanisterByPrincipal(p)
	}
	return CanisterByName(text)
}

func (c Canister) Kind() CanisterKind { return c.kind }

// IsPrincipal reports whether the canister was given as an id.
func (c Canister) IsPrincipal() bool { return c.kind == CanisterPrincipal }

// Name returns the symbolic name and whether c is a name.
func (c Canister) Name() (string, bool) {
	return c.name, c.kind == CanisterName
}

// Principal returns the id and whether c is an id.
func (c Canister) Principal() (principal.Principal, bool) {
	return c.principal, c.kind == CanisterPrincipal
}

// Text returns the name or principal as the user typed it.
func (c Canister) Text() string {
	if c.kind == CanisterPrincipal {
		return c.principal.String()
	}
	return c.name
}

func (c Canister) String() string {
	if c.kind == CanisterPrincipal {
		return fmt.Sprintf("Principal(%s)", c.principal)
	}
	return fmt.Sprintf("Name(%s)", c.name)
}

// NetworkKind tells how a network was specified.
type NetworkKind int

const (
	// NetworkName is a symbolic network resolved through the project config.
	NetworkName NetworkKind = iota
	// NetworkURL is an explicit endpoint.
	NetworkURL
)

// Network is a --network value: a name or a URL.
type Network struct {
	kind  NetworkKind
	value string
}

// NetworkByName returns a network given by symbolic name.
func NetworkByName(name string) Network {
	return Network{kind: NetworkName, value: name}
}

// NetworkByURL returns a network given by URL.
func NetworkByURL(url string) Network {
	return Network{kind: NetworkURL, value: url}
}

// ParseNetwork treats text with an http:// or https:// prefix as a URL,
// anything else as a name.
func ParseNetwork(text string) Network {
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		return NetworkByURL(text)
	}
	return NetworkByName(text)
}

func (n Network) Kind() NetworkKind { return n.kind }

// IsURL reports whether the network was given as a URL.
func (n Network) IsURL() bool { return n.kind == NetworkURL }

// IsName reports whether the network was given as a name.
func (n Network) IsName() bool { return n.kind == NetworkName }

// Value returns the name or URL as written.
func (n Network) Value() string { return n.value }

func (n Network) String() string {
	if n.kind == NetworkURL {
		return fmt.Sprintf("Url(%s)", n.value)
	}
	return fmt.Sprintf("Name(%s)", n.value)
}
