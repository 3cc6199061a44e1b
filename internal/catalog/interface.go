package catalog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, name string) (GetOutput, error)
	List(ctx context.Context) (ListOutput, error)
}
