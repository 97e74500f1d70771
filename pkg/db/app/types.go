package app

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// right request types, values fixed by the public API
// ("DELTEEVERYTHING" keeps its historical spelling for client compatibility)
const (
	RIGHT_TYPE_WITHDRAW_CONSENT  = "WITHDRAWCONSENT"
	RIGHT_TYPE_COMPLAIN          = "COMPLAIN"
	RIGHT_TYPE_ERASURE           = "ERASURE"
	RIGHT_TYPE_DELETE_EVERYTHING = "DELTEEVERYTHING"
	RIGHT_TYPE_INFO              = "INFO"
	RIGHT_TYPE_PORTABILITY       = "PORTABILITY"
)

// IoTApp also carries the persisted questionnaire state: the stored vote is
// always the one recomputed by the server from DetailVote on the last save.
type IoTApp struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	// consent texts the app asks its subjects to accept
	Consenses []string `bson:"consenses,omitempty" json:"consenses,omitempty"`

	QuestionnaireVote string    `bson:"questionnaireVote,omitempty" json:"questionnaireVote,omitempty"`
	DetailVote        []*string `bson:"detailVote,omitempty" json:"detailVote,omitempty"`
	OptionalAnswers   []*string `bson:"optionalAnswers,omitempty" json:"optionalAnswers,omitempty"`
}

// UserAppRelation records that a user participates in an app and which of
// the app's consents they have accepted. Names are denormalized so list
// endpoints need no extra lookups.
type UserAppRelation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
	AppID     string             `bson:"appId" json:"appId"`
	AppName   string             `bson:"appName" json:"appName"`
	Consenses []string           `bson:"consenses" json:"consenses"`
}

type PrivacyNotice struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AppID   string             `bson:"appId" json:"appId"`
	AppName string             `bson:"appName" json:"appname"`
	Text    string             `bson:"text" json:"text"`
}

type RightRequest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID     string             `bson:"senderId" json:"senderId"`
	SenderName   string             `bson:"senderName" json:"senderName"`
	ReceiverID   string             `bson:"receiverId" json:"receiverId"`
	ReceiverName string             `bson:"receiverName" json:"receiverName"`
	AppID        string             `bson:"appId,omitempty" json:"appId,omitempty"`
	AppName      string             `bson:"appName,omitempty" json:"appName,omitempty"`
	RightType    string             `bson:"rightType" json:"rightType"`
	Other        string             `bson:"other,omitempty" json:"other,omitempty"`
	Details      string             `bson:"details,omitempty" json:"details,omitempty"`
	Handled      bool               `bson:"handled" json:"handled"`
	Response     string             `bson:"response,omitempty" json:"response,omitempty"`
	Time         time.Time          `bson:"time" json:"time"`
}
