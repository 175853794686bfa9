package renderer

import "errors"

var (
	ErrSceneNotDefined = errors.New("renderer: no scene defined")
	ErrInterrupted     = errors.New("renderer: interrupted while rendering")
)
