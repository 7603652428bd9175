package scene

import "errors"

// Domain errors for scene construction and hosting.
var (
	// ErrNoContext indicates the rendering context or window could not be created.
	ErrNoContext = errors.New("scene: rendering context unavailable")

	// ErrEmptyGrid indicates an operation that needs at least one cell.
	ErrEmptyGrid = errors.New("scene: grid has no cells")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("scene: invalid configuration")
)
