package domain

import "net/netip"

type CreateSetInput struct {
	Name        string
	Description string
	CIDRs       []string
}

// CreateSetRecord is what reaches the repository after the service has
// validated and parsed the input.
type CreateSetRecord struct {
	Name        string
	Description string
	CIDRs       []netip.Prefix
}
