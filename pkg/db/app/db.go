package app

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
	COLLECTION_NAME_APPS            = "apps"
	COLLECTION_NAME_RELATIONS       = "user_app_relations"
	COLLECTION_NAME_PRIVACY_NOTICES = "privacy_notices"
	COLLECTION_NAME_RIGHT_REQUESTS  = "right_requests"
)

type AppDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewAppDBService(configs db.DBConfig) (*AppDBService, error) {
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

	appDBSc := &AppDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}

	if configs.RunIndexCreation {
		if err := appDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for app DB", slog.String("error", err.Error()))
		}
	}

	return appDBSc, nil
}

func (dbService *AppDBService) getDBName() string {
	return dbService.DBNamePrefix + "dashboard_apps"
}

func (dbService *AppDBService) collectionApps() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_APPS)
}

func (dbService *AppDBService) collectionRelations() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_RELATIONS)
}

func (dbService *AppDBService) collectionPrivacyNotices() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_PRIVACY_NOTICES)
}

func (dbService *AppDBService) collectionRightRequests() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_RIGHT_REQUESTS)
}

func (dbService *AppDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *AppDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for app DB")
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionRelations().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "userId", Value: 1},
					{Key: "appId", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "appId", Value: 1}},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating indexes for user_app_relations collection", slog.String("error", err.Error()))
	}

	_, err = dbService.collectionPrivacyNotices().Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "appId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		slog.Error("Error creating index for privacy_notices collection", slog.String("error", err.Error()))
	}

	_, err = dbService.collectionRightRequests().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "time", Value: -1}},
			},
			{
				Keys: bson.D{{Key: "receiverId", Value: 1}, {Key: "time", Value: -1}},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating indexes for right_requests collection", slog.String("error", err.Error()))
	}

	return nil
}
