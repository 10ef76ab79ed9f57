package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`

	// Never serialized to clients.
	PasswordHash string `bson:"passwordHash" json:"-"`

	Bio string `bson:"bio" json:"bio"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
