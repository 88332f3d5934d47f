package core

import "errors"

// Expected validation rejections. The presentation layer matches the error
// text of ErrDuplicate and ErrNotEnough to pick localized messages, so the
// two strings are a wire contract and must stay exactly as they are.
var (
	// ErrDuplicate: a name already exists (case-insensitive) on another row.
	ErrDuplicate = errors.New("duplicate")

	// ErrNotEnough: the requested quantity exceeds the unassigned stock.
	ErrNotEnough = errors.New("not_enough")

	// ErrNotFound: a referenced row is gone. Delete paths generally treat
	// this permissively instead of returning it.
	ErrNotFound = errors.New("not_found")
)
