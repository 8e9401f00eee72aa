package domain

import (
	"net/netip"
	"time"
)

// SubnetSet is a named, persisted list of subnets that addresses can be
// matched against without resending the CIDRs on every request.
type SubnetSet struct {
	ID          int64
	Name        string
	Description string
	CIDRs       []netip.Prefix
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
