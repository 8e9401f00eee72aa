package domain

import "context"

type SubnetSetRepository interface {
	List(ctx context.Context) ([]SubnetSet, error)
	FindByName(ctx context.Context, name string) (SubnetSet, error)
	Create(ctx context.Context, record CreateSetRecord) (SubnetSet, error)
	Delete(ctx context.Context, name string) (bool, error)
}
