package app

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (dbService *AppDBService) AddApp(app IoTApp) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionApps().InsertOne(ctx, app)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (dbService *AppDBService) GetAppByID(appID string) (*IoTApp, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(appID)
	if err != nil {
		return nil, err
	}

	var app IoTApp
	err = dbService.collectionApps().FindOne(ctx, bson.M{"_id": objID}).Decode(&app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (dbService *AppDBService) GetAppsByIDs(appIDs []string) ([]IoTApp, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objIDs := make([]primitive.ObjectID, 0, len(appIDs))
	for _, id := range appIDs {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		objIDs = append(objIDs, objID)
	}

	cursor, err := dbService.collectionApps().Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	apps := []IoTApp{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateAppDetails updates the descriptive fields and the consent texts of
// an app. Nil parameters are left untouched, so a partial update cannot
// wipe fields it did not carry. Questionnaire state is never touched here,
// SaveQuestionnaire owns that.
func (dbService *AppDBService) UpdateAppDetails(appID string, name *string, description *string, consenses []string) error {
	fields := appDetailsUpdateFields(name, description, consenses)
	if len(fields) == 0 {
		return nil
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(appID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionApps().UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": fields},
	)
	return err
}

func appDetailsUpdateFields(name *string, description *string, consenses []string) bson.M {
	fields := bson.M{}
	if name != nil {
		fields["name"] = *name
	}
	if description != nil {
		fields["description"] = *description
	}
	if consenses != nil {
		fields["consenses"] = consenses
	}
	return fields
}

// SaveQuestionnaire replaces the whole persisted answer set and the vote in
// one update. There is no partial save.
func (dbService *AppDBService) SaveQuestionnaire(appID string, vote string, detailVote []*string, optionalAnswers []*string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(appID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionApps().UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"questionnaireVote": vote,
			"detailVote":        detailVote,
			"optionalAnswers":   optionalAnswers,
		}},
	)
	return err
}
