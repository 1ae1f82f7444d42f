// Package principal implements the textual encoding of Internet Computer
// principals, the fixed-format identifiers for canisters and accounts.
//
// The text form is the lowercase base32 (RFC 4648, no padding) encoding of
// a big-endian CRC32 checksum followed by the raw bytes, split into groups
// of five characters separated by dashes:
//
//	ryjl3-tyaaa-aaaaa-aaaba-cai
package principal

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"
)

// MaxLength is the maximum number of raw bytes in a principal.
const MaxLength = 29

const groupSize = 5

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Principal is an opaque identifier. The zero value is the management canister.
// It is comparable, so == is structural equality.
type Principal struct {
	raw string
}

// FromBytes builds a principal from its raw bytes.
func FromBytes(b []byte) (Principal, error) {
	if len(b) > MaxLength {
		return Principal{}, fmt.Errorf("principal is %d bytes, at most %d allowed", len(b), MaxLength)
	}
	return Principal{raw: string(b)}, nil
}

// Anonymous returns the anonymous principal (2vxsx-fae).
func Anonymous() Principal {
	return Principal{raw: "\x04"}
}

// Management returns the management canister principal (aaaaa-aa).
func Management() Principal {
	return Principal{}
}

// Parse decodes the textual form. Input is accepted in any letter case but
// must otherwise be the canonical encoding, including the checksum.
func Parse(text string) (Principal, error) {
	s := strings.ToLower(text)
	if s == "" {
		return Principal{}, fmt.Errorf("empty principal")
	}

	compact := strings.ReplaceAll(s, "-", "")
	decoded, err := encoding.DecodeString(strings.ToUpper(compact))
	if err != nil {
		return Principal{}, fmt.Errorf("invalid principal %q: %w", text, err)
	}
	if len(decoded) < crc32.Size {
		return Principal{}, fmt.Errorf("invalid principal %q: too short", text)
	}

	p, err := FromBytes(decoded[crc32.Size:])
	if err != nil {
		return Principal{}, fmt.Errorf("invalid principal %q: %w", text, err)
	}

	if binary.BigEndian.Uint32(decoded[:crc32.Size]) != crc32.ChecksumIEEE([]byte(p.raw)) {
		return Principal{}, fmt.Errorf("invalid principal %q: checksum mismatch", text)
	}
	if p.String() != s {
		return Principal{}, fmt.Errorf("invalid principal %q: not in canonical form", text)
	}
	return p, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(text string) Principal {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Bytes returns a copy of the raw bytes.
func (p Principal) Bytes() []byte {
	return []byte(p.raw)
}

// IsAnonymous reports whether p is the anonymous principal.
func (p Principal) IsAnonymous() bool {
	return p == Anonymous()
}

// String returns the canonical textual form.
func (p Principal) String() string {
	buf := make([]byte, crc32.Size+len(p.raw))
	binary.BigEndian.PutUint32(buf, crc32.ChecksumIEEE([]byte(p.raw)))
	copy(buf[crc32.Size:], p.raw)

	enc := strings.ToLower(encoding.EncodeToString(buf))

	var b strings.Builder
	for i := 0; i < len(enc); i += groupSize {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + groupSize
		if end > len(enc) {
			end = len(enc)
		}
		b.WriteString(enc[i:end])
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p Principal) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Principal) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value adapts a *Principal to pflag.Value so it can be bound as a flag or
// parsed from a positional argument.
type Value struct {
	P *Principal
}

func (v Value) String() string {
	if v.P == nil {
		return ""
	}
	return v.P.String()
}

func (v Value) Set(s string) error {
	return v.P.UnmarshalText([]byte(s))
}

func (v Value) Type() string {
	return "principal"
}
