package booking

import (
	"context"

	"github.com/mediflowhq/mediflow/internal/models"
)

type Repository interface {
	// Create persists a new appointment and fills in its generated id.
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Update writes back the appointment after the prescription URL
	// became available.
	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListByDateAsc returns every appointment ordered by appointment
	// date ascending.
	ListByDateAsc(
		ctx context.Context,
	) ([]models.Appointment, error)
}
