package apihandlers

import (
	"log/slog"
	"net/http"

	mw "github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers/middlewares"
	"github.com/gin-gonic/gin"

	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

// getMe is the who-am-I endpoint. An anonymous request never reaches this
// handler, the session middleware answers 401 before.
func (h *HttpEndpoints) getMe(c *gin.Context) {
	c.JSON(http.StatusOK, mw.GetPrincipal(c))
}

func (h *HttpEndpoints) getAppsOfUser(c *gin.Context) {
	userID, ok := requireQueryParam(c, "userId")
	if !ok {
		return
	}
	if !requireSelf(c, userID) {
		return
	}

	relations, err := h.appDBConn.GetRelationsForUser(userID)
	if err != nil {
		slog.Error("failed to load relations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	apps, err := h.getAppsByRelations(relations)
	if err != nil {
		slog.Error("failed to load apps", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, apps)
}

// getAllContacts lists the users reachable through the messaging views: for
// a subject the controllers and DPOs of their apps, for controllers and
// DPOs the subjects of their apps.
func (h *HttpEndpoints) getAllContacts(c *gin.Context) {
	userID, ok := requireQueryParam(c, "userId")
	if !ok {
		return
	}
	if !requireSelf(c, userID) {
		return
	}
	principal := mw.GetPrincipal(c)

	appIDs, err := h.appIDsOfUser(userID)
	if err != nil {
		slog.Error("failed to load relations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	contactIDs := []string{}
	seen := map[string]bool{userID: true}
	for _, appID := range appIDs {
		relations, err := h.appDBConn.GetRelationsForApp(appID)
		if err != nil {
			slog.Error("failed to load relations for app", slog.String("appID", appID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		for _, relation := range relations {
			if !seen[relation.UserID] {
				seen[relation.UserID] = true
				contactIDs = append(contactIDs, relation.UserID)
			}
		}
	}

	users, err := h.userDBConn.GetUsersByIDs(contactIDs)
	if err != nil {
		slog.Error("failed to load users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	contacts := []userDB.DashboardUser{}
	for _, user := range users {
		if principal.Role == userDB.ROLE_SUBJECT {
			if user.Role == userDB.ROLE_CONTROLLER || user.Role == userDB.ROLE_DPO {
				contacts = append(contacts, user)
			}
		} else if user.Role == userDB.ROLE_SUBJECT {
			contacts = append(contacts, user)
		}
	}

	c.JSON(http.StatusOK, contacts)
}

// getCommonApps lists the apps both the principal and the other user are
// related to, e.g. to show the shared context of a conversation. Users who
// share no app get a 403, so the endpoint cannot be used to enumerate the
// app list of arbitrary accounts.
func (h *HttpEndpoints) getCommonApps(c *gin.Context) {
	otherUserID, ok := requireQueryParam(c, "otherUserId")
	if !ok {
		return
	}
	principal := mw.GetPrincipal(c)

	ownAppIDs, err := h.appIDsOfUser(principal.ID)
	if err != nil {
		slog.Error("failed to load relations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	otherAppIDs, err := h.appIDsOfUser(otherUserID)
	if err != nil {
		slog.Error("failed to load relations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	commonIDs := intersectAppIDs(ownAppIDs, otherAppIDs)
	if len(commonIDs) == 0 {
		slog.Warn("common apps requested for unrelated user",
			slog.String("userID", principal.ID), slog.String("otherUserID", otherUserID))
		c.JSON(http.StatusForbidden, gin.H{"error": "no shared apps with this user"})
		return
	}

	apps, err := h.appDBConn.GetAppsByIDs(commonIDs)
	if err != nil {
		slog.Error("failed to load apps", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, apps)
}

// intersectAppIDs keeps the IDs present in both lists, in the order of the
// first one.
func intersectAppIDs(own []string, other []string) []string {
	otherSet := map[string]bool{}
	for _, appID := range other {
		otherSet[appID] = true
	}

	common := []string{}
	for _, appID := range own {
		if otherSet[appID] {
			common = append(common, appID)
		}
	}
	return common
}
