package trials

import "errors"

var (
	ErrStoreUnavailable = errors.New("trial store not configured")
	ErrNotFound         = errors.New("trial request not found")
)
