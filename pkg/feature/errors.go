package feature

import "errors"

// Sentinel errors for feature computation. These allow errors.Is from callers.
var (
	ErrRowMismatch     = errors.New("row count mismatch")
	ErrDuplicateColumn = errors.New("duplicate feature column")
	ErrEmptyGameStates = errors.New("empty game states")
	ErrUnknownFeature  = errors.New("unknown feature transformer")
)
