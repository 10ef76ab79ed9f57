package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domain "github.com/mediflowhq/mediflow/internal/domain/user"
	"github.com/mediflowhq/mediflow/internal/httperr"
	"github.com/mediflowhq/mediflow/internal/httpresp"
	"github.com/mediflowhq/mediflow/internal/logger"
	"github.com/mediflowhq/mediflow/internal/middleware"
	"github.com/mediflowhq/mediflow/internal/validators"
)

type ProfileHandler struct {
	users domain.Repository
	log   logger.Logger
}

func NewProfileHandler(users domain.Repository, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{users: users, log: log}
}

type UpdateProfileRequest struct {
	Name *string `json:"name"`
	// Pointer so the client can clear the bio with an explicit "".
	Bio   *string `json:"bio"`
	Email *string `json:"email"`
}

func (h *ProfileHandler) currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.MustGet(middleware.ContextUserID).(string)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		httperr.Unauthorized(c, "invalid_token_payload", "Invalid token.")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := h.currentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		h.log.Error("failed to fetch profile", "error", err)
		httperr.Internal(c, "internal_error", "Server error fetching profile.")
		return
	}

	httpresp.OK(c, user)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		h.log.Error("failed to load profile", "error", err)
		httperr.Internal(c, "internal_error", "Server error updating profile.")
		return
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != "" && email != user.Email {
			if !validators.IsEmailFormatValid(email) {
				httperr.BadRequest(c, "invalid_email", "Please enter a valid email address.")
				return
			}

			existing, err := h.users.FindByEmail(c.Request.Context(), email)
			if err == nil && existing.ID != user.ID {
				httperr.BadRequest(c, "email_taken", "This email is already in use by another account.")
				return
			}
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				h.log.Error("email uniqueness check failed", "error", err)
				httperr.Internal(c, "internal_error", "Server error updating profile.")
				return
			}

			user.Email = email
		}
	}

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			httperr.BadRequest(c, "email_taken", "This email is already in use by another account.")
			return
		}
		h.log.Error("failed to update profile", "error", err)
		httperr.Internal(c, "internal_error", "Server error updating profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
