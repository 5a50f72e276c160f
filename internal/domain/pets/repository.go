package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
}
