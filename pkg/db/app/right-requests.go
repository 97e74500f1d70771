package app

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *AppDBService) AddRightRequest(request RightRequest) (*RightRequest, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if request.Time.IsZero() {
		request.Time = time.Now()
	}

	res, err := dbService.collectionRightRequests().InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = res.InsertedID.(primitive.ObjectID)
	return &request, nil
}

func (dbService *AppDBService) GetRightRequestByID(requestID string) (*RightRequest, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return nil, err
	}

	var request RightRequest
	err = dbService.collectionRightRequests().FindOne(ctx, bson.M{"_id": objID}).Decode(&request)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetRightRequestsForUser returns the requests the user sent or received,
// newest first.
func (dbService *AppDBService) GetRightRequestsForUser(userID string) ([]RightRequest, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"senderId": userID},
		bson.M{"receiverId": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: -1}})

	cursor, err := dbService.collectionRightRequests().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []RightRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (dbService *AppDBService) SetRightRequestResponse(requestID string, response string) error {
	return dbService.updateRightRequest(requestID, bson.M{"response": response})
}

func (dbService *AppDBService) SetRightRequestHandled(requestID string, handled bool) error {
	return dbService.updateRightRequest(requestID, bson.M{"handled": handled})
}

func (dbService *AppDBService) updateRightRequest(requestID string, fields bson.M) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionRightRequests().UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": fields},
	)
	return err
}
