package apihandlers

import (
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	mw "github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers/middlewares"
	"github.com/AlbertoHugonin/privacydashboard/pkg/utils"
	"github.com/gin-gonic/gin"

	appDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/app"
	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

var errNoReceiver = errors.New("app has neither DPOs nor controllers")

func randomWait(minTimeSec int, maxTimeSec int) {
	time.Sleep(time.Duration(rand.Intn(maxTimeSec-minTimeSec)+minTimeSec) * time.Second)
}

// requireSelfOrRole allows the request when the userId parameter refers to
// the principal itself, or when the principal holds one of the given roles.
// Writes the error response when the check fails.
func requireSelfOrRole(c *gin.Context, userID string, roles ...string) bool {
	principal := mw.GetPrincipal(c)
	if userID == principal.ID {
		return true
	}
	if utils.ContainsString(roles, principal.Role) {
		return true
	}
	slog.Warn("attempt to access another user's data",
		slog.String("userID", principal.ID),
		slog.String("requestedUserID", userID),
		slog.String("path", c.Request.URL.Path))
	c.JSON(http.StatusForbidden, gin.H{"error": "not allowed for this user"})
	return false
}

// requireSelf is requireSelfOrRole without any role escape hatch.
func requireSelf(c *gin.Context, userID string) bool {
	return requireSelfOrRole(c, userID)
}

func requireQueryParam(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + name})
		return "", false
	}
	return value, true
}

func (h *HttpEndpoints) userHasRelationToApp(userID string, appID string) bool {
	_, err := h.appDBConn.GetUserAppRelation(userID, appID)
	return err == nil
}

// usersOfAppWithRole resolves the relations of an app to user documents and
// keeps those with the given role.
func (h *HttpEndpoints) usersOfAppWithRole(appID string, role string) ([]userDB.DashboardUser, error) {
	relations, err := h.appDBConn.GetRelationsForApp(appID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(relations))
	for _, relation := range relations {
		userIDs = append(userIDs, relation.UserID)
	}

	users, err := h.userDBConn.GetUsersByIDs(userIDs)
	if err != nil {
		return nil, err
	}

	filtered := []userDB.DashboardUser{}
	for _, user := range users {
		if user.Role == role {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}

// appIDsOfUser returns the ids of the apps the user has a relation to.
func (h *HttpEndpoints) appIDsOfUser(userID string) ([]string, error) {
	relations, err := h.appDBConn.GetRelationsForUser(userID)
	if err != nil {
		return nil, err
	}
	appIDs := make([]string, 0, len(relations))
	for _, relation := range relations {
		appIDs = append(appIDs, relation.AppID)
	}
	return appIDs, nil
}

func (h *HttpEndpoints) getAppsByRelations(relations []appDB.UserAppRelation) ([]appDB.IoTApp, error) {
	appIDs := make([]string, 0, len(relations))
	for _, relation := range relations {
		appIDs = append(appIDs, relation.AppID)
	}
	return h.appDBConn.GetAppsByIDs(appIDs)
}
