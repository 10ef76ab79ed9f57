package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name  string    `bson:"name" json:"name"`
	Email string    `bson:"email" json:"email"`
	Date  time.Time `bson:"date" json:"date"`

	Doctor   string `bson:"doctor,omitempty" json:"doctor"`
	Symptoms string `bson:"symptoms,omitempty" json:"symptoms"`

	// URL of the user-uploaded supporting file, if any.
	FileURL string `bson:"fileUrl,omitempty" json:"file_url"`

	// Populated by the second write of the booking pipeline.
	PrescriptionPDFURL string `bson:"prescriptionPdfUrl,omitempty" json:"prescription_pdf_url"`

	Status string `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
