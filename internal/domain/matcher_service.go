package domain

import (
	"context"
	"fmt"
	"net/netip"
	"strings"

	"github.com/subnetcheck/subnetcheck/internal/match"
)

type matcherService struct {
	sets SubnetSetRepository
}

func NewMatcherService(sets SubnetSetRepository) MatcherService {
	return &matcherService{sets: sets}
}

func (s *matcherService) MatchSubnet(_ context.Context, address, subnet string) (bool, error) {
	addr, err := parseAddress(address)
	if err != nil {
		return false, err
	}

	ok, err := match.AddrInSubnet(addr, subnet)
	if err != nil {
		return false, invalidCIDR(err)
	}
	return ok, nil
}

func (s *matcherService) MatchAnySubnet(_ context.Context, address string, subnets []string) (bool, error) {
	addr, err := parseAddress(address)
	if err != nil {
		return false, err
	}

	ok, err := match.AddrInAnySubnet(addr, subnets)
	if err != nil {
		return false, invalidCIDR(err)
	}
	return ok, nil
}

func (s *matcherService) MatchAllSubnets(_ context.Context, address string, subnets []string) (bool, error) {
	addr, err := parseAddress(address)
	if err != nil {
		return false, err
	}

	ok, err := match.AddrInAllSubnets(addr, subnets)
	if err != nil {
		return false, invalidCIDR(err)
	}
	return ok, nil
}

func (s *matcherService) MatchAddresses(_ context.Context, addresses, subnets []string) (bool, error) {
	addrs := make([]netip.Addr, 0, len(addresses))
	for _, address := range addresses {
		addr, err := parseAddress(address)
		if err != nil {
			return false, err
		}
		addrs = append(addrs, addr)
	}

	ok, err := match.AnyAddrInAnySubnet(addrs, subnets)
	if err != nil {
		return false, invalidCIDR(err)
	}
	return ok, nil
}

func (s *matcherService) ListSets(ctx context.Context) ([]SubnetSet, error) {
	return s.sets.List(ctx)
}

func (s *matcherService) CreateSet(ctx context.Context, input CreateSetInput) (SubnetSet, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return SubnetSet{}, fmt.Errorf("%w: set name is required", ErrInvalidInput)
	}

	// Compiling up front validates every CIDR before anything is stored.
	compiled, err := match.NewSet(input.CIDRs)
	if err != nil {
		return SubnetSet{}, invalidCIDR(err)
	}

	return s.sets.Create(ctx, CreateSetRecord{
		Name:        name,
		Description: input.Description,
		CIDRs:       compiled.Prefixes(),
	})
}

func (s *matcherService) GetSet(ctx context.Context, name string) (SubnetSet, error) {
	return s.sets.FindByName(ctx, name)
}

func (s *matcherService) DeleteSet(ctx context.Context, name string) error {
	deleted, err := s.sets.Delete(ctx, name)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *matcherService) MatchSet(ctx context.Context, name, address string) (bool, error) {
	addr, err := parseAddress(address)
	if err != nil {
		return false, err
	}

	set, err := s.sets.FindByName(ctx, name)
	if err != nil {
		return false, err
	}

	compiled, err := match.NewSetFromPrefixes(set.CIDRs)
	if err != nil {
		return false, err
	}
	return compiled.Contains(addr), nil
}

func parseAddress(address string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(address)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: invalid address %q", ErrInvalidInput, address)
	}
	return addr, nil
}

func invalidCIDR(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
