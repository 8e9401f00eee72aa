// Package match implements IP subnet membership testing over net/netip
// values. All functions are pure and safe for concurrent use.
package match

import (
	"fmt"
	"net/netip"
)

// ParseError reports a subnet string that could not be interpreted as CIDR
// notation. Input is the offending string as passed by the caller.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse subnet %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parsePrefix(subnet string) (netip.Prefix, error) {
	prefix, err := netip.ParsePrefix(subnet)
	if err != nil {
		return netip.Prefix{}, &ParseError{Input: subnet, Err: err}
	}
	return prefix, nil
}

// AddrInSubnet reports whether addr lies within the subnet given in CIDR
// notation, e.g. "192.168.182.0/24" or "fd00::/8". It returns a *ParseError
// if subnet is not valid CIDR notation.
//
// An address whose family differs from the subnet's is a defined non-match,
// not an error. IPv4-mapped IPv6 addresses are unmapped before the check, so
// ::ffff:192.168.182.1 is inside 192.168.182.0/24.
func AddrInSubnet(addr netip.Addr, subnet string) (bool, error) {
	prefix, err := parsePrefix(subnet)
	if err != nil {
		return false, err
	}
	return prefix.Contains(addr.Unmap()), nil
}

// AddrInAnySubnet reports whether addr lies within at least one of subnets.
// Subnets are parsed lazily in order and the scan stops at the first match,
// so an invalid entry after a matching one is never evaluated. An empty list
// matches nothing.
func AddrInAnySubnet(addr netip.Addr, subnets []string) (bool, error) {
	for _, subnet := range subnets {
		ok, err := AddrInSubnet(addr, subnet)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// AddrInAllSubnets reports whether addr lies within every one of subnets.
// The scan stops at the first non-match. An empty list is vacuously true.
func AddrInAllSubnets(addr netip.Addr, subnets []string) (bool, error) {
	for _, subnet := range subnets {
		ok, err := AddrInSubnet(addr, subnet)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// AnyAddrInAnySubnet reports whether at least one of addrs lies within at
// least one of subnets. Each subnet is parsed once and checked against all
// addresses before the next subnet is considered.
func AnyAddrInAnySubnet(addrs []netip.Addr, subnets []string) (bool, error) {
	for _, subnet := range subnets {
		prefix, err := parsePrefix(subnet)
		if err != nil {
			return false, err
		}
		for _, addr := range addrs {
			if prefix.Contains(addr.Unmap()) {
				return true, nil
			}
		}
	}
	return false, nil
}
