package communication

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *CommunicationDBService) AddNotification(notification Notification) (*Notification, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if notification.Time.IsZero() {
		notification.Time = time.Now()
	}

	res, err := dbService.collectionNotifications().InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}
	notification.ID = res.InsertedID.(primitive.ObjectID)
	return &notification, nil
}

func (dbService *CommunicationDBService) GetNotificationByID(notificationID string) (*Notification, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, err
	}

	var notification Notification
	err = dbService.collectionNotifications().FindOne(ctx, bson.M{"_id": objID}).Decode(&notification)
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetNotificationsForReceiver returns the user's notifications, newest
// first.
func (dbService *CommunicationDBService) GetNotificationsForReceiver(userID string) ([]Notification, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "time", Value: -1}})
	cursor, err := dbService.collectionNotifications().Find(ctx, bson.M{"receiverId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (dbService *CommunicationDBService) SetNotificationIsRead(notificationID string, isRead bool) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionNotifications().UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"isRead": isRead}},
	)
	return err
}

func (dbService *CommunicationDBService) DeleteNotification(notificationID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionNotifications().DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
