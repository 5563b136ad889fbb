package catch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Incident is a logged failure. Its ID appears in the log entry and in
// the error returned to the caller, so the two can be matched.
type Incident struct {
	ID    uuid.UUID
	Cause error
}

func newIncident(cause error) *Incident {
	return &Incident{ID: uuid.New(), Cause: cause}
}

func (e *Incident) Error() string {
	return fmt.Sprintf("incident %s: %v", e.ID, e.Cause)
}

func (e *Incident) Unwrap() error {
	return e.Cause
}

// IncidentID returns the id of the first *Incident in err's chain.
func IncidentID(err error) (uuid.UUID, bool) {
	var inc *Incident
	if errors.As(err, &inc) {
		return inc.ID, true
	}
	return uuid.Nil, false
}

// IsCancellation reports whether err comes from a cancelled or expired
// context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
