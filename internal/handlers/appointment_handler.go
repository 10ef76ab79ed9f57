package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/mediflowhq/mediflow/internal/domain/booking"
	"github.com/mediflowhq/mediflow/internal/httperr"
	"github.com/mediflowhq/mediflow/internal/httpresp"
	"github.com/mediflowhq/mediflow/internal/logger"
	ucBooking "github.com/mediflowhq/mediflow/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC    *ucBooking.BookAppointment
	listUC    *ucBooking.ListAppointments
	publisher domain.DocumentPublisher
	log       logger.Logger
}

func NewAppointmentHandler(
	bookUC *ucBooking.BookAppointment,
	listUC *ucBooking.ListAppointments,
	publisher domain.DocumentPublisher,
	log logger.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:    bookUC,
		listUC:    listUC,
		publisher: publisher,
		log:       log,
	}
}

// ======================================================
// BOOK
// ======================================================

// Book accepts a multipart form: name, email, date plus optional doctor,
// symptoms and a single "file" field. A supplied file is published to
// object storage before the pipeline runs, mirroring an upload middleware
// that resolves the file to a URL ahead of the controller.
func (h *AppointmentHandler) Book(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	dateStr := strings.TrimSpace(c.PostForm("date"))
	doctor := strings.TrimSpace(c.PostForm("doctor"))
	symptoms := strings.TrimSpace(c.PostForm("symptoms"))

	if name == "" || email == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_required_fields", "Name, email and date are required.")
		return
	}

	date, err := parseAppointmentDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be RFC3339 or YYYY-MM-DD.")
		return
	}

	fileURL, err := h.publishUpload(c)
	if err != nil {
		h.log.Error("failed to store uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		Name:     name,
		Email:    email,
		Date:     date,
		Doctor:   doctor,
		Symptoms: symptoms,
		FileURL:  fileURL,
	})
	if err != nil {
		if httperr.IsBusiness(err, "missing_required_fields") {
			httperr.BadRequest(c, "missing_required_fields", "Name, email and date are required.")
			return
		}
		h.log.Error("booking pipeline failed", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Appointment booked successfully",
		"prescription": ap.PrescriptionPDFURL,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list appointments", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	httpresp.OK(c, appointments)
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) publishUpload(c *gin.Context) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		// No file attached.
		return "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return h.publisher.Publish(
		c.Request.Context(),
		data,
		domain.UploadFolder,
		strings.ToLower(filepath.Ext(fh.Filename)),
		contentType,
	)
}

func parseAppointmentDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
