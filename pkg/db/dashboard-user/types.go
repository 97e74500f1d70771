package dashboarduser

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// roles
const (
	ROLE_SUBJECT    = "SUBJECT"
	ROLE_CONTROLLER = "CONTROLLER"
	ROLE_DPO        = "DPO"
)

type DashboardUser struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Name     string             `bson:"name" json:"name"`
	Role     string             `bson:"role" json:"role"`
	Mail     string             `bson:"mail,omitempty" json:"mail,omitempty"`

	// argon2id hash, never serialized
	Password string `bson:"password" json:"-"`

	// unix timestamps of recent failed logins
	FailedLoginAttempts []int64 `bson:"failedLoginAttempts" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"-"`
	LastLogin time.Time `bson:"lastLogin,omitempty" json:"-"`
}

// Session is created on login and referenced by the session cookie through
// its opaque token. Expired sessions are removed by the TTL index.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Token     string             `bson:"token"`
	UserID    string             `bson:"userId"`
	CreatedAt time.Time          `bson:"createdAt"`
}
