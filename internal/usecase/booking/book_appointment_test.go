package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mediflowhq/mediflow/internal/domain/booking"
	"github.com/mediflowhq/mediflow/internal/httperr"
	"github.com/mediflowhq/mediflow/internal/models"
)

// --------- Fakes ---------

type fakeRepo struct {
	created   []*models.Appointment
	updated   []*models.Appointment
	createErr error
	updateErr error
}

func (r *fakeRepo) Create(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, ap)
	return nil
}

func (r *fakeRepo) Update(_ context.Context, ap *models.Appointment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, ap)
	return nil
}

func (r *fakeRepo) ListByDateAsc(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.created))
	for _, ap := range r.created {
		out = append(out, *ap)
	}
	return out, nil
}

type fakeGenerator struct {
	data   []byte
	err    error
	calls  int
	fields domain.DocumentFields
}

func (g *fakeGenerator) Generate(_ context.Context, fields domain.DocumentFields) ([]byte, error) {
	g.calls++
	g.fields = fields
	if g.err != nil {
		return nil, g.err
	}
	return g.data, nil
}

type fakePublisher struct {
	url     string
	err     error
	calls   int
	folders []string
}

func (p *fakePublisher) Publish(_ context.Context, _ []byte, folder, _, _ string) (string, error) {
	p.calls++
	p.folders = append(p.folders, folder)
	if p.err != nil {
		return "", p.err
	}
	return p.url, nil
}

type fakeSender struct {
	sent []domain.Message
	err  error
}

func (s *fakeSender) Send(_ context.Context, msg domain.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

// --------- Helpers ---------

func validInput() BookAppointmentInput {
	return BookAppointmentInput{
		Name:     "Alice",
		Email:    "a@x.com",
		Date:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Doctor:   "Dr. Lee",
		Symptoms: "cough",
	}
}

func newPipeline(repo *fakeRepo, gen *fakeGenerator, pub *fakePublisher, snd *fakeSender) *BookAppointment {
	return NewBookAppointment(repo, gen, pub, snd)
}

// --------- Tests ---------

func TestBookAppointment_Success(t *testing.T) {
	repo := &fakeRepo{}
	gen := &fakeGenerator{data: []byte("%PDF-fake")}
	pub := &fakePublisher{url: "https://cdn.example.com/prescriptions/abc.pdf"}
	snd := &fakeSender{}

	ap, err := newPipeline(repo, gen, pub, snd).Execute(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, ap)

	require.Len(t, repo.created, 1)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, pub.url, ap.PrescriptionPDFURL)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)

	require.Len(t, snd.sent, 1)
	msg := snd.sent[0]
	assert.Equal(t, "a@x.com", msg.To)
	assert.Equal(t, "Appointment Confirmation & Prescription", msg.Subject)
	assert.Contains(t, msg.Body, "Hi Alice")
	assert.Contains(t, msg.Body, pub.url)
	assert.Empty(t, msg.AttachmentPath)
}

func TestBookAppointment_PublishesToPrescriptionFolder(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{url: "https://cdn.example.com/p.pdf"}

	_, err := newPipeline(repo, &fakeGenerator{data: []byte("x")}, pub, &fakeSender{}).
		Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, []string{domain.PrescriptionFolder}, pub.folders)
}

func TestBookAppointment_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BookAppointmentInput)
	}{
		{"no name", func(in *BookAppointmentInput) { in.Name = "" }},
		{"no email", func(in *BookAppointmentInput) { in.Email = "" }},
		{"no date", func(in *BookAppointmentInput) { in.Date = time.Time{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			gen := &fakeGenerator{data: []byte("x")}
			snd := &fakeSender{}

			in := validInput()
			tc.mutate(&in)

			_, err := newPipeline(repo, gen, &fakePublisher{url: "u"}, snd).
				Execute(context.Background(), in)

			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))
			assert.Empty(t, repo.created)
			assert.Zero(t, gen.calls)
			assert.Empty(t, snd.sent)
		})
	}
}

func TestBookAppointment_CreateFailureStopsPipeline(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("db down")}
	gen := &fakeGenerator{data: []byte("x")}
	pub := &fakePublisher{url: "u"}
	snd := &fakeSender{}

	_, err := newPipeline(repo, gen, pub, snd).Execute(context.Background(), validInput())
	require.Error(t, err)
	assert.Zero(t, gen.calls)
	assert.Zero(t, pub.calls)
	assert.Empty(t, snd.sent)
}

func TestBookAppointment_GeneratorFailureLeavesPendingRecord(t *testing.T) {
	repo := &fakeRepo{}
	gen := &fakeGenerator{err: errors.New("render failed")}
	pub := &fakePublisher{url: "u"}
	snd := &fakeSender{}

	_, err := newPipeline(repo, gen, pub, snd).Execute(context.Background(), validInput())
	require.Error(t, err)

	// The first write happened; the record rests in its intermediate state.
	require.Len(t, repo.created, 1)
	assert.Equal(t, string(domain.StatusPendingDocument), repo.created[0].Status)
	assert.Empty(t, repo.created[0].PrescriptionPDFURL)
	assert.Zero(t, pub.calls)
	assert.Empty(t, snd.sent)
}

func TestBookAppointment_PublishFailureSendsNoMail(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{err: errors.New("storage unavailable")}
	snd := &fakeSender{}

	_, err := newPipeline(repo, &fakeGenerator{data: []byte("x")}, pub, snd).
		Execute(context.Background(), validInput())
	require.Error(t, err)

	require.Len(t, repo.created, 1)
	assert.Empty(t, repo.created[0].PrescriptionPDFURL)
	assert.Empty(t, repo.updated)
	assert.Empty(t, snd.sent)
}

func TestBookAppointment_UpdateFailureSendsNoMail(t *testing.T) {
	repo := &fakeRepo{updateErr: errors.New("db down")}
	snd := &fakeSender{}

	_, err := newPipeline(repo, &fakeGenerator{data: []byte("x")}, &fakePublisher{url: "u"}, snd).
		Execute(context.Background(), validInput())
	require.Error(t, err)
	assert.Empty(t, snd.sent)
}

func TestBookAppointment_MailFailureSurfacesAfterConfirm(t *testing.T) {
	repo := &fakeRepo{}
	snd := &fakeSender{err: errors.New("relay refused")}

	_, err := newPipeline(repo, &fakeGenerator{data: []byte("x")}, &fakePublisher{url: "u"}, snd).
		Execute(context.Background(), validInput())

	// The caller sees a failure, but the record already carries its URL:
	// publish and the second write strictly precede the notification.
	require.Error(t, err)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, "u", repo.updated[0].PrescriptionPDFURL)
	assert.Equal(t, string(domain.StatusConfirmed), repo.updated[0].Status)
}

func TestBookAppointment_OptionalFieldsReachGenerator(t *testing.T) {
	gen := &fakeGenerator{data: []byte("x")}

	in := validInput()
	in.Doctor = ""
	in.Symptoms = ""

	_, err := newPipeline(&fakeRepo{}, gen, &fakePublisher{url: "u"}, &fakeSender{}).
		Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Alice", gen.fields.Name)
	assert.Empty(t, gen.fields.Doctor)
	assert.Empty(t, gen.fields.Symptoms)
	assert.True(t, strings.Contains(gen.fields.Date, "2025"))
}

func TestListAppointments_DelegatesToRepository(t *testing.T) {
	repo := &fakeRepo{}
	_, err := newPipeline(repo, &fakeGenerator{data: []byte("x")}, &fakePublisher{url: "u"}, &fakeSender{}).
		Execute(context.Background(), validInput())
	require.NoError(t, err)

	list, err := NewListAppointments(repo).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].Name)
}
