package dashboarduser

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	umUtils "github.com/AlbertoHugonin/privacydashboard/pkg/user-management/utils"
)

// CreateSession creates a session for the user and returns it with a fresh
// opaque token, which is what the session cookie carries.
func (dbService *DashboardUserDBService) CreateSession(userID string) (*Session, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	session := &Session{
		Token:     umUtils.GenerateUniqueTokenString(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	res, err := dbService.collectionSessions().InsertOne(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = res.InsertedID.(primitive.ObjectID)
	return session, nil
}

// GetSessionByToken returns the session carried by a session cookie.
func (dbService *DashboardUserDBService) GetSessionByToken(token string) (*Session, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var session Session
	err := dbService.collectionSessions().FindOne(ctx, bson.M{"token": token}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSessionByToken invalidates a single session (logout).
func (dbService *DashboardUserDBService) DeleteSessionByToken(token string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionSessions().DeleteOne(ctx, bson.M{"token": token})
	return err
}

// DeleteSessionsByUserID invalidates every session of the given user.
func (dbService *DashboardUserDBService) DeleteSessionsByUserID(userID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionSessions().DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
