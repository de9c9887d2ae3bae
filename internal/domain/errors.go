package domain

import "errors"

// Domain errors.
var (
	ErrNoAnnotations    = errors.New("no TODO annotations found")
	ErrLintFailed       = errors.New("lint violations found")
	ErrUnknownGroupKey  = errors.New("unsupported group key")
	ErrInvalidIssueRef  = errors.New("invalid issue reference")
	ErrInvalidIssueKind = errors.New("invalid issue format")
)
