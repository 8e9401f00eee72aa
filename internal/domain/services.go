package domain

import "context"

type MatcherService interface {
	MatchSubnet(ctx context.Context, address, subnet string) (bool, error)
	MatchAnySubnet(ctx context.Context, address string, subnets []string) (bool, error)
	MatchAllSubnets(ctx context.Context, address string, subnets []string) (bool, error)
	MatchAddresses(ctx context.Context, addresses, subnets []string) (bool, error)
	ListSets(ctx context.Context) ([]SubnetSet, error)
	CreateSet(ctx context.Context, input CreateSetInput) (SubnetSet, error)
	GetSet(ctx context.Context, name string) (SubnetSet, error)
	DeleteSet(ctx context.Context, name string) error
	MatchSet(ctx context.Context, name, address string) (bool, error)
}
