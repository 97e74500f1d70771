package communication

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *CommunicationDBService) AddMessage(message Message) (*Message, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if message.Time.IsZero() {
		message.Time = time.Now()
	}

	res, err := dbService.collectionMessages().InsertOne(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = res.InsertedID.(primitive.ObjectID)
	return &message, nil
}

// GetConversation returns every message exchanged between the two users,
// oldest first.
func (dbService *CommunicationDBService) GetConversation(user1ID string, user2ID string) ([]Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"senderId": user1ID, "receiverId": user2ID},
		bson.M{"senderId": user2ID, "receiverId": user1ID},
	}}
	return dbService.findMessages(filter, 1)
}

// GetMessagesForUser returns every message the user sent or received,
// newest first.
func (dbService *CommunicationDBService) GetMessagesForUser(userID string) ([]Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"senderId": userID},
		bson.M{"receiverId": userID},
	}}
	return dbService.findMessages(filter, -1)
}

func (dbService *CommunicationDBService) findMessages(filter bson.M, sortOrder int) ([]Message, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "time", Value: sortOrder}})
	cursor, err := dbService.collectionMessages().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
