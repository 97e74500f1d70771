package dashboarduser

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (dbService *DashboardUserDBService) AddUser(user DashboardUser) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	res, err := dbService.collectionUsers().InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (dbService *DashboardUserDBService) GetUserByUsername(username string) (*DashboardUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user DashboardUser
	err := dbService.collectionUsers().FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dbService *DashboardUserDBService) GetUserByID(userID string) (*DashboardUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	var user DashboardUser
	err = dbService.collectionUsers().FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dbService *DashboardUserDBService) GetUsersByIDs(userIDs []string) ([]DashboardUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objIDs := make([]primitive.ObjectID, 0, len(userIDs))
	for _, id := range userIDs {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		objIDs = append(objIDs, objID)
	}

	cursor, err := dbService.collectionUsers().Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []DashboardUser{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveFailedLoginAttempts replaces the stored failed login timestamps. The
// caller prunes entries outside the throttling window first, so the stored
// array stays bounded even for accounts that never log in successfully.
func (dbService *DashboardUserDBService) SaveFailedLoginAttempts(userID string, attempts []int64) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionUsers().UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"failedLoginAttempts": attempts}},
	)
	return err
}

// MarkLoginSuccess updates the last login timestamp and drops the failed
// attempt history.
func (dbService *DashboardUserDBService) MarkLoginSuccess(userID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionUsers().UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"lastLogin":           time.Now(),
			"failedLoginAttempts": []int64{},
		}},
	)
	return err
}
