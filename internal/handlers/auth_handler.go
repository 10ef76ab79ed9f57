package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mediflowhq/mediflow/internal/config"
	domain "github.com/mediflowhq/mediflow/internal/domain/user"
	"github.com/mediflowhq/mediflow/internal/httperr"
	"github.com/mediflowhq/mediflow/internal/logger"
	"github.com/mediflowhq/mediflow/internal/models"
	"github.com/mediflowhq/mediflow/internal/validators"
)

const tokenTTL = 30 * 24 * time.Hour

type AuthHandler struct {
	users  domain.Repository
	config *config.Config
	log    logger.Logger

	// Overridable so tests do not depend on DNS.
	checkEmailDomain func(string) bool
}

func NewAuthHandler(users domain.Repository, cfg *config.Config, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		users:            users,
		config:           cfg,
		log:              log,
		checkEmailDomain: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_fields", "Please enter all fields (name, email, password).")
		return
	}

	if len(req.Password) < 6 {
		httperr.BadRequest(c, "password_too_short", "Password must be at least 6 characters long.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailFormatValid(email) {
		httperr.BadRequest(c, "invalid_email", "Please enter a valid email address.")
		return
	}

	if !h.checkEmailDomain(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	// Optimistic pre-check; the unique index catches the race below and
	// both paths answer identically.
	if _, err := h.users.FindByEmail(c.Request.Context(), email); err == nil {
		httperr.BadRequest(c, "email_taken", "Email already exists.")
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		h.log.Error("registration pre-check failed", "error", err)
		httperr.Internal(c, "internal_error", "Server error during registration. Please try again later.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Server error during registration. Please try again later.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			httperr.BadRequest(c, "email_taken", "Email already exists.")
			return
		}
		h.log.Error("failed to create user", "error", err)
		httperr.Internal(c, "failed_to_create_user", "Server error during registration. Please try again later.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Server error during registration. Please try again later.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_fields", "Please enter both email and password.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same wording as the wrong-password branch so the response
			// never reveals whether the account exists.
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
			return
		}
		h.log.Error("login lookup failed", "error", err)
		httperr.Internal(c, "internal_error", "Server error during login. Please try again later.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Server error during login. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID.Hex(),
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
