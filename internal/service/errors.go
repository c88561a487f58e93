package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalid     = errors.New("invalid")
	ErrSourceFetch = errors.New("notice source fetch failed")
)

// SourceFetchError is returned when the upstream notice source cannot be read.
type SourceFetchError struct {
	Source string
	Err    error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("fetch notices from %s: %v", e.Source, e.Err)
}

func (e *SourceFetchError) Unwrap() error {
	return e.Err
}

func (e *SourceFetchError) Is(target error) bool {
	return target == ErrSourceFetch
}
