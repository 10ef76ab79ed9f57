package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediflowhq/mediflow/internal/models"
)

func TestConfirm(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPendingDocument)}
	now := time.Now().UTC()

	require.NoError(t, Confirm(ap, "https://cdn.example.com/p.pdf", now))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.Equal(t, "https://cdn.example.com/p.pdf", ap.PrescriptionPDFURL)
	assert.Equal(t, now, ap.UpdatedAt)
}

func TestConfirm_RejectsDoubleConfirm(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}
	assert.Error(t, Confirm(ap, "u", time.Now()))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPendingDocument, InitialStatus())
}
