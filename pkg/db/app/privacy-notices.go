package app

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *AppDBService) GetPrivacyNoticeByID(privacyNoticeID string) (*PrivacyNotice, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(privacyNoticeID)
	if err != nil {
		return nil, err
	}

	var notice PrivacyNotice
	err = dbService.collectionPrivacyNotices().FindOne(ctx, bson.M{"_id": objID}).Decode(&notice)
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

func (dbService *AppDBService) GetPrivacyNoticeForApp(appID string) (*PrivacyNotice, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var notice PrivacyNotice
	err := dbService.collectionPrivacyNotices().FindOne(ctx, bson.M{"appId": appID}).Decode(&notice)
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

func (dbService *AppDBService) GetPrivacyNoticesForApps(appIDs []string) ([]PrivacyNotice, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionPrivacyNotices().Find(ctx, bson.M{"appId": bson.M{"$in": appIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notices := []PrivacyNotice{}
	if err := cursor.All(ctx, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

// UpsertPrivacyNoticeForApp replaces the app's privacy notice text, creating
// the notice if the app never had one.
func (dbService *AppDBService) UpsertPrivacyNoticeForApp(appID string, appName string, text string) (*PrivacyNotice, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var notice PrivacyNotice
	err := dbService.collectionPrivacyNotices().FindOneAndUpdate(ctx,
		bson.M{"appId": appID},
		bson.M{"$set": bson.M{
			"appName": appName,
			"text":    text,
		}},
		opts,
	).Decode(&notice)
	if err != nil {
		return nil, err
	}
	return &notice, nil
}
