package communication

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// notification types, values fixed by the public API
const (
	NOTIFICATION_TYPE_MESSAGE        = "Message"
	NOTIFICATION_TYPE_REQUEST        = "Request"
	NOTIFICATION_TYPE_PRIVACY_NOTICE = "PrivacyNotice"
)

type Message struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID     string             `bson:"senderId" json:"senderId"`
	SenderName   string             `bson:"senderName" json:"senderName"`
	ReceiverID   string             `bson:"receiverId" json:"receiverId"`
	ReceiverName string             `bson:"receiverName" json:"receiverName"`
	Text         string             `bson:"text" json:"text"`
	Time         time.Time          `bson:"time" json:"time"`
}

// Notification points at the object that caused it (message, right request
// or privacy notice) through ObjectID and Type.
type Notification struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID     string             `bson:"senderId" json:"senderId"`
	SenderName   string             `bson:"senderName" json:"senderName"`
	ReceiverID   string             `bson:"receiverId" json:"receiverId"`
	ReceiverName string             `bson:"receiverName" json:"receiverName"`
	Description  string             `bson:"description" json:"description"`
	Type         string             `bson:"type" json:"type"`
	ObjectID     string             `bson:"objectId" json:"objectId"`
	Time         time.Time          `bson:"time" json:"time"`
	IsRead       bool               `bson:"isRead" json:"isRead"`
}
