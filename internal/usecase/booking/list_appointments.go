package booking

import (
	"context"

	domain "github.com/mediflowhq/mediflow/internal/domain/booking"
	"github.com/mediflowhq/mediflow/internal/models"
)

// ListAppointments returns every appointment ordered by appointment date
// ascending. Read-only; the ordering is delegated to the store.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListByDateAsc(ctx)
}
