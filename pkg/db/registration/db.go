package registration

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/db"
	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/registration"
)

// collection names
const (
	COLLECTION_NAME_REGISTRATIONS = "registrations"
)

// RegistrationDBService holds the one mongo client of the process. It is
// created once at startup and shared by all requests, the driver pools the
// underlying connections.
type RegistrationDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
	eventTypes   []registration.EventTypeConfig
}

func NewRegistrationDBService(configs db.DBConfig, eventTypes []registration.EventTypeConfig) (*RegistrationDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	rDBSc := &RegistrationDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
		eventTypes:   eventTypes,
	}

	if configs.RunIndexCreation {
		rDBSc.CreateDefaultIndexes()
	}
	return rDBSc, nil
}

func (dbService *RegistrationDBService) getDBName() string {
	return dbService.DBNamePrefix + "events"
}

func (dbService *RegistrationDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *RegistrationDBService) collectionRegistrations() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_REGISTRATIONS)
}
