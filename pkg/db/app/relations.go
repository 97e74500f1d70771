package app

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (dbService *AppDBService) AddUserAppRelation(relation UserAppRelation) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionRelations().InsertOne(ctx, relation)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (dbService *AppDBService) GetUserAppRelation(userID string, appID string) (*UserAppRelation, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var relation UserAppRelation
	err := dbService.collectionRelations().FindOne(ctx, bson.M{"userId": userID, "appId": appID}).Decode(&relation)
	if err != nil {
		return nil, err
	}
	return &relation, nil
}

func (dbService *AppDBService) GetRelationsForUser(userID string) ([]UserAppRelation, error) {
	return dbService.findRelations(bson.M{"userId": userID})
}

func (dbService *AppDBService) GetRelationsForApp(appID string) ([]UserAppRelation, error) {
	return dbService.findRelations(bson.M{"appId": appID})
}

func (dbService *AppDBService) findRelations(filter bson.M) ([]UserAppRelation, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionRelations().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	relations := []UserAppRelation{}
	if err := cursor.All(ctx, &relations); err != nil {
		return nil, err
	}
	return relations, nil
}

// AddConsenses adds the given consents to the relation, without duplicates.
func (dbService *AppDBService) AddConsenses(userID string, appID string, consenses []string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionRelations().UpdateOne(ctx,
		bson.M{"userId": userID, "appId": appID},
		bson.M{"$addToSet": bson.M{"consenses": bson.M{"$each": consenses}}},
	)
	return err
}

func (dbService *AppDBService) RemoveConsenses(userID string, appID string, consenses []string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionRelations().UpdateOne(ctx,
		bson.M{"userId": userID, "appId": appID},
		bson.M{"$pull": bson.M{"consenses": bson.M{"$in": consenses}}},
	)
	return err
}

func (dbService *AppDBService) RemoveAllConsenses(userID string, appID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionRelations().UpdateOne(ctx,
		bson.M{"userId": userID, "appId": appID},
		bson.M{"$set": bson.M{"consenses": []string{}}},
	)
	return err
}
