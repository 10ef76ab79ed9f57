package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mediflowhq/mediflow/internal/models"
)

var (
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned both by the optimistic pre-check and by
	// the unique-index violation on insert, so callers see one outcome
	// regardless of which side catches the race.
	ErrEmailTaken = errors.New("email already exists")
)

type Repository interface {
	Create(
		ctx context.Context,
		u *models.User,
	) error

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	FindByID(
		ctx context.Context,
		id primitive.ObjectID,
	) (*models.User, error)

	Update(
		ctx context.Context,
		u *models.User,
	) error
}
