package vbind

import "errors"

// Sentinel errors for binding operations.
var (
	ErrAlreadyMounted     = errors.New("vbind: instance has already mounted")
	ErrMountPointNotFound = errors.New("vbind: mount point not found")
	ErrInvalidData        = errors.New("vbind: data must be a map or a func returning one")
	ErrInvalidState       = errors.New("vbind: state snapshot rejected")
	ErrNoEncoder          = errors.New("vbind: no encoder configured")
	ErrNotRenderable      = errors.New("vbind: root element cannot render markup")
	ErrElementNotFound    = errors.New("vbind: element not found")
)

// IsAlreadyMounted checks if err is a lifecycle violation.
func IsAlreadyMounted(err error) bool {
	return errors.Is(err, ErrAlreadyMounted)
}

// IsNotFound checks if err reports a missing mount point or element.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMountPointNotFound) || errors.Is(err, ErrElementNotFound)
}

// IsStateError checks if err is a state snapshot failure.
func IsStateError(err error) bool {
	return errors.Is(err, ErrInvalidState)
}
