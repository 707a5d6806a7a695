package skill

import "errors"

var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrSkillNameExists = errors.New("skill with this name already exists")
	ErrSkillInUse      = errors.New("skill is assigned to employees")
)
