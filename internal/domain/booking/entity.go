package booking

import (
	"time"

	"github.com/mediflowhq/mediflow/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm attaches the published prescription URL and moves the
// appointment out of its pending-document state.
func Confirm(ap *models.Appointment, pdfURL string, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.PrescriptionPDFURL = pdfURL
	ap.Status = string(StatusConfirmed)
	ap.UpdatedAt = now
	return nil
}
