package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/mediflowhq/mediflow/internal/domain/booking"
	"github.com/mediflowhq/mediflow/internal/models"
)

type MongoAppointmentRepository struct {
	collection *mongo.Collection
}

func NewMongoAppointmentRepository(db *mongo.Database) domain.Repository {
	collection := db.Collection("appointments")

	// Listing always sorts by appointment date.
	dateIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}},
	}
	collection.Indexes().CreateOne(context.Background(), dateIndex)

	return &MongoAppointmentRepository{collection: collection}
}

func (r *MongoAppointmentRepository) Create(ctx context.Context, ap *models.Appointment) error {
	now := time.Now().UTC()
	ap.CreatedAt = now
	ap.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, ap)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		ap.ID = id
	}
	return nil
}

func (r *MongoAppointmentRepository) Update(ctx context.Context, ap *models.Appointment) error {
	update := bson.M{"$set": bson.M{
		"prescriptionPdfUrl": ap.PrescriptionPDFURL,
		"status":             ap.Status,
		"updatedAt":          ap.UpdatedAt,
	}}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": ap.ID}, update)
	return err
}

func (r *MongoAppointmentRepository) ListByDateAsc(ctx context.Context) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
