package attendance

import "errors"

// Capture errors, returned before anything is written
var (
	ErrCameraUnavailable   = errors.New("camera access denied or not available")
	ErrLocationUnavailable = errors.New("physical location anchoring is mandatory for check-in")
)
