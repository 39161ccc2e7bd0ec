package registration

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/db"
	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/registration"
)

func (dbService *RegistrationDBService) CreateDefaultIndexes() {
	if err := dbService.CreateIndexesForRegistrationsCollection(); err != nil {
		slog.Error("failed to create indexes for registrations collection", slog.String("error", err.Error()))
	}
}

// CreateIndexesForRegistrationsCollection creates the unique index on the
// registration ID, one partial unique index per configured event-type
// uniqueness key, and the listing index. The unique indexes are what make
// CreateRegistration an atomic conditional insert.
func (dbService *RegistrationDBService) CreateIndexesForRegistrationsCollection() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "registrationId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "registrationType", Value: 1},
				{Key: "submittedAt", Value: -1},
			},
		},
	}

	for _, event := range dbService.eventTypes {
		if event.UniquenessKey == "" {
			continue
		}
		indexes = append(indexes, mongo.IndexModel{
			Keys: bson.D{
				{Key: event.UniquenessKey, Value: 1},
			},
			Options: options.Index().
				SetName(fmt.Sprintf("uniq_%s_%s", event.Name, event.UniquenessKey)).
				SetUnique(true).
				SetPartialFilterExpression(bson.D{
					{Key: "registrationType", Value: event.Name},
				}),
		})
	}

	_, err := dbService.collectionRegistrations().Indexes().CreateMany(ctx, indexes)
	return err
}

func (dbService *RegistrationDBService) DropIndexes() {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionRegistrations().Indexes().DropAll(ctx)
	if err != nil {
		slog.Error("failed to drop indexes for registrations collection", slog.String("error", err.Error()))
	}
}

func (dbService *RegistrationDBService) GetIndexes() ([]bson.M, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return db.ListCollectionIndexes(ctx, dbService.collectionRegistrations())
}

// CreateRegistration inserts the submission. Uniqueness violations (on the
// registration ID or on the event type's uniqueness key) surface as
// registration.ErrDuplicateKey, transport failures as
// registration.ErrStoreUnavailable.
func (dbService *RegistrationDBService) CreateRegistration(submission registration.Submission) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionRegistrations().InsertOne(ctx, submission)
	if err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (dbService *RegistrationDBService) FindByRegistrationID(registrationID string) (registration.Submission, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"registrationId": registrationID}
	var submission registration.Submission
	err := dbService.collectionRegistrations().FindOne(ctx, filter).Decode(&submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return submission, registration.ErrNotFound
		}
		return submission, classifyReadError(err)
	}
	return submission, nil
}

func (dbService *RegistrationDBService) FindByType(eventType string, page int64, limit int64) ([]registration.Submission, int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	filter := bson.M{"registrationType": eventType}

	total, err := dbService.collectionRegistrations().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, classifyReadError(err)
	}

	opts := options.Find().
		SetSort(bson.M{"submittedAt": -1}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := dbService.collectionRegistrations().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, classifyReadError(err)
	}
	defer cursor.Close(ctx)

	submissions := []registration.Submission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, 0, classifyReadError(err)
	}
	return submissions, total, nil
}

func (dbService *RegistrationDBService) UpdateRegistrationStatus(registrationID string, status string) (registration.Submission, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"registrationId": registrationID}
	update := bson.M{"$set": bson.M{
		"status":      status,
		"lastUpdated": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var submission registration.Submission
	err := dbService.collectionRegistrations().FindOneAndUpdate(ctx, filter, update, opts).Decode(&submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return submission, registration.ErrNotFound
		}
		return submission, classifyReadError(err)
	}
	return submission, nil
}

func classifyWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", registration.ErrDuplicateKey, err)
	}
	return classifyReadError(err)
}

func classifyReadError(err error) error {
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("%w: %v", registration.ErrStoreUnavailable, err)
	}
	return err
}
