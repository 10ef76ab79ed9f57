package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/mediflowhq/mediflow/internal/domain/booking"
	"github.com/mediflowhq/mediflow/internal/httperr"
	"github.com/mediflowhq/mediflow/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	Name  string
	Email string
	Date  time.Time

	Doctor   string
	Symptoms string

	// URL of an already-published supporting file, empty when the caller
	// uploaded nothing.
	FileURL string
}

// ======================================================
// USE CASE
// ======================================================

// BookAppointment runs the booking pipeline: persist the record, generate
// the prescription, publish it, write back the URL, notify the requester.
// Steps are strictly sequential; the first failure aborts the remainder.
// There is no compensating rollback, so a record created before a later
// failure stays behind in its pending-document state.
type BookAppointment struct {
	repo      domain.Repository
	generator domain.DocumentGenerator
	publisher domain.DocumentPublisher
	mailer    domain.MailSender
}

func NewBookAppointment(
	repo domain.Repository,
	generator domain.DocumentGenerator,
	publisher domain.DocumentPublisher,
	mailer domain.MailSender,
) *BookAppointment {
	return &BookAppointment{
		repo:      repo,
		generator: generator,
		publisher: publisher,
		mailer:    mailer,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. The only synchronous guard
	// --------------------------------------------------
	if in.Name == "" || in.Email == "" || in.Date.IsZero() {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	// --------------------------------------------------
	// 2. First write: record without prescription
	// --------------------------------------------------
	ap := &models.Appointment{
		Name:     in.Name,
		Email:    in.Email,
		Date:     in.Date,
		Doctor:   in.Doctor,
		Symptoms: in.Symptoms,
		FileURL:  in.FileURL,
		Status:   string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	// --------------------------------------------------
	// 3. Prescription document
	// --------------------------------------------------
	pdf, err := uc.generator.Generate(ctx, domain.DocumentFields{
		Name:     ap.Name,
		Email:    ap.Email,
		Date:     ap.Date.Format(time.RFC1123),
		Doctor:   ap.Doctor,
		Symptoms: ap.Symptoms,
	})
	if err != nil {
		return nil, fmt.Errorf("generate prescription: %w", err)
	}

	// --------------------------------------------------
	// 4. Publish to object storage
	// --------------------------------------------------
	pdfURL, err := uc.publisher.Publish(
		ctx,
		pdf,
		domain.PrescriptionFolder,
		".pdf",
		"application/pdf",
	)
	if err != nil {
		return nil, fmt.Errorf("publish prescription: %w", err)
	}

	// --------------------------------------------------
	// 5. Second write: attach the URL
	// --------------------------------------------------
	if err := domain.Confirm(ap, pdfURL, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	// --------------------------------------------------
	// 6. Confirmation mail (link in body, no attachment)
	// --------------------------------------------------
	if err := uc.mailer.Send(ctx, domain.Message{
		To:      ap.Email,
		Subject: "Appointment Confirmation & Prescription",
		Body:    confirmationBody(ap),
	}); err != nil {
		return nil, fmt.Errorf("send confirmation: %w", err)
	}

	return ap, nil
}

func confirmationBody(ap *models.Appointment) string {
	return fmt.Sprintf(
		"Hi %s, your appointment for %s is confirmed!\n\nDownload your prescription here:\n%s",
		ap.Name,
		ap.Date.Format(time.RFC1123),
		ap.PrescriptionPDFURL,
	)
}
