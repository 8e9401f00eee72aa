package match

import (
	"net/netip"

	"go4.org/netipx"
)

// Set is a compiled, immutable collection of subnets. Building a Set parses
// every CIDR once, so it is the right shape for stored subnet lists that are
// matched against repeatedly.
type Set struct {
	prefixes []netip.Prefix
	set      *netipx.IPSet
}

// NewSet compiles cidrs into a Set. It returns a *ParseError for the first
// entry that is not valid CIDR notation.
func NewSet(cidrs []string) (*Set, error) {
	var builder netipx.IPSetBuilder
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, cidr := range cidrs {
		prefix, err := parsePrefix(cidr)
		if err != nil {
			return nil, err
		}
		prefixes = append(prefixes, prefix)
		builder.AddPrefix(prefix)
	}

	set, err := builder.IPSet()
	if err != nil {
		return nil, err
	}

	return &Set{prefixes: prefixes, set: set}, nil
}

// NewSetFromPrefixes compiles already-parsed prefixes into a Set.
func NewSetFromPrefixes(prefixes []netip.Prefix) (*Set, error) {
	var builder netipx.IPSetBuilder
	for _, prefix := range prefixes {
		builder.AddPrefix(prefix)
	}

	set, err := builder.IPSet()
	if err != nil {
		return nil, err
	}

	return &Set{prefixes: append([]netip.Prefix(nil), prefixes...), set: set}, nil
}

// Contains reports whether addr lies within any subnet of the set.
func (s *Set) Contains(addr netip.Addr) bool {
	return s.set.Contains(addr.Unmap())
}

// ContainsAny reports whether any of addrs lies within any subnet of the set.
func (s *Set) ContainsAny(addrs []netip.Addr) bool {
	for _, addr := range addrs {
		if s.Contains(addr) {
			return true
		}
	}
	return false
}

// Prefixes returns the subnets the set was built from, in input order.
func (s *Set) Prefixes() []netip.Prefix {
	return s.prefixes
}

// Len returns the number of subnets the set was built from.
func (s *Set) Len() int {
	return len(s.prefixes)
}
