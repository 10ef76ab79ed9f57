package booking

import "context"

// Storage folders for published objects.
const (
	PrescriptionFolder = "prescriptions"
	UploadFolder       = "uploads"
)

// DocumentGenerator produces the printable prescription bytes for an
// appointment.
type DocumentGenerator interface {
	Generate(ctx context.Context, fields DocumentFields) ([]byte, error)
}

// DocumentFields are the scalar appointment fields rendered into the
// prescription document.
type DocumentFields struct {
	Name     string
	Email    string
	Date     string
	Doctor   string
	Symptoms string
}

// DocumentPublisher uploads opaque bytes to durable object storage and
// returns a publicly resolvable URL. Every call creates a new distinct
// object.
type DocumentPublisher interface {
	Publish(ctx context.Context, data []byte, folder, ext, contentType string) (string, error)
}

// Message is a single outbound notification.
type Message struct {
	To      string
	Subject string
	Body    string

	// Optional path to a local file attached to the message.
	AttachmentPath string
}

// MailSender delivers a message over a transient mail-relay session.
type MailSender interface {
	Send(ctx context.Context, msg Message) error
}
