package leave

import "errors"

var (
	ErrLeaveRequestNotFound   = errors.New("leave request not found")
	ErrInvalidState           = errors.New("action not permitted from current status")
	ErrInvalidAction          = errors.New("unrecognized leave action")
	ErrPermissionDenied       = errors.New("not permitted to act on this leave request")
	ErrConcurrentModification = errors.New("leave request was modified concurrently")
)
