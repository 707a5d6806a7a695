package skill

import "context"

type SkillRepository interface {
	Create(ctx context.Context, skill Skill) (Skill, error)
	GetByID(ctx context.Context, id string) (Skill, error)
	List(ctx context.Context) ([]Skill, error)
	Update(ctx context.Context, req UpdateSkillRequest) error
	Delete(ctx context.Context, id string) error
}
