package interfaces

import "errors"

// ErrConditionalCheckFailed is returned by repositories when a conditional
// write loses: the guarded record already exists, or its expected prior state
// no longer holds. Usecases translate it into the matching domain conflict.
var ErrConditionalCheckFailed = errors.New("conditional check failed")

// ErrTransactionUnresolved is returned when a transactional write ended in an
// ambiguous state (the service reported it in progress or timed out). The
// writes may or may not have landed; callers must re-read before retrying.
var ErrTransactionUnresolved = errors.New("transaction outcome unresolved")

// Identity provider outcomes.
var (
	ErrBadCredentials  = errors.New("bad credentials")
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)
