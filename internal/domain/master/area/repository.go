package area

import "context"

type AreaRepository interface {
	Create(ctx context.Context, a Area) (Area, error)
	GetByID(ctx context.Context, id string) (Area, error)
	List(ctx context.Context) ([]Area, error)
	Update(ctx context.Context, req UpdateAreaRequest) error
	Delete(ctx context.Context, id string) error
}
