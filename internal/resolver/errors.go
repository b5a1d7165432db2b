package resolver

import "fmt"

// A LookupError is a recoverable external-service failure: the sub-path that
// hit it found nothing, but the cascade continues with the next strategy.
// Any other error returned by a sub-path is fatal for the whole resolution;
// in particular, failing to fetch details for an already-accepted candidate
// means the catalog itself is unreachable and retrying another path would
// not help.
type LookupError struct {
	Stage string // "hash", "episode" or "movie"
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup failed: %v", e.Stage, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
