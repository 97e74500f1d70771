package communication

import (
	"context"
	"log/slog"
	"time"

	"github.com/AlbertoHugonin/privacydashboard/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_MESSAGES      = "messages"
	COLLECTION_NAME_NOTIFICATIONS = "notifications"
)

type CommunicationDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewCommunicationDBService(configs db.DBConfig) (*CommunicationDBService, error) {
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

	commDBSc := &CommunicationDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}

	if configs.RunIndexCreation {
		if err := commDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for communication DB", slog.String("error", err.Error()))
		}
	}

	return commDBSc, nil
}

func (dbService *CommunicationDBService) getDBName() string {
	return dbService.DBNamePrefix + "dashboard_communication"
}

func (dbService *CommunicationDBService) collectionMessages() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_MESSAGES)
}

func (dbService *CommunicationDBService) collectionNotifications() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_NOTIFICATIONS)
}

func (dbService *CommunicationDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *CommunicationDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for communication DB")
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionMessages().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "time", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "receiverId", Value: 1}, {Key: "time", Value: 1}},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating indexes for messages collection", slog.String("error", err.Error()))
	}

	_, err = dbService.collectionNotifications().Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{{Key: "receiverId", Value: 1}, {Key: "time", Value: -1}},
		},
	)
	if err != nil {
		slog.Error("Error creating index for notifications collection", slog.String("error", err.Error()))
	}

	return nil
}
