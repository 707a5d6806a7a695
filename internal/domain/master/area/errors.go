package area

import "errors"

var (
	ErrAreaNotFound   = errors.New("area of responsibility not found")
	ErrAreaNameExists = errors.New("area with this name already exists")
	ErrAreaInUse      = errors.New("area is referenced by employees or roster entries")
)
