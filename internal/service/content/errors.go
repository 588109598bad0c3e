package content

import (
	"fmt"

	"portfolio-site/internal/domain"
)

// Op names the admin action a remote failure happened in.
type Op string

const (
	OpFetch   Op = "fetch"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpReorder Op = "reorder"
	OpUpload  Op = "upload"
)

// OpError is the single failure kind surfaced to operators. The underlying
// error is kept for logging and for errors.Is checks on domain sentinels.
type OpError struct {
	Op         Op
	Collection domain.Collection
	Err        error
}

func (e *OpError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
