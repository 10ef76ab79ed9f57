package booking

import "github.com/mediflowhq/mediflow/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	// StatusPendingDocument marks the window between the first write and
	// the prescription publish. A record may rest here permanently if a
	// later pipeline step failed; it is surfaced by the listing for
	// manual reconciliation, never retried.
	StatusPendingDocument Status = "pending_document"

	StatusConfirmed Status = "confirmed"
)

func InitialStatus() Status {
	return StatusPendingDocument
}

// CanConfirm checks that the appointment is still waiting on its
// prescription document.
func CanConfirm(current Status) error {
	if current != StatusPendingDocument {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
