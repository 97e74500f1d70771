package apihandlers

import (
	"log/slog"
	"net/http"

	mw "github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers/middlewares"
	"github.com/AlbertoHugonin/privacydashboard/pkg/notifier"
	"github.com/gin-gonic/gin"

	commDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/communication"
	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

func (h *HttpEndpoints) getPrivacyNotice(c *gin.Context) {
	privacyNoticeID, ok := requireQueryParam(c, "privacyNoticeId")
	if !ok {
		return
	}

	notice, err := h.appDBConn.GetPrivacyNoticeByID(privacyNoticeID)
	if err != nil {
		slog.Warn("privacy notice not found", slog.String("privacyNoticeID", privacyNoticeID))
		c.JSON(http.StatusNotFound, gin.H{"error": "privacy notice not found"})
		return
	}
	c.JSON(http.StatusOK, notice)
}

func (h *HttpEndpoints) getPrivacyNoticeFromApp(c *gin.Context) {
	appID, ok := requireQueryParam(c, "appId")
	if !ok {
		return
	}
	if !h.requireAppAccess(c, appID) {
		return
	}

	notice, err := h.appDBConn.GetPrivacyNoticeForApp(appID)
	if err != nil {
		slog.Warn("privacy notice not found for app", slog.String("appID", appID))
		c.JSON(http.StatusNotFound, gin.H{"error": "privacy notice not found"})
		return
	}
	c.JSON(http.StatusOK, notice)
}

// getPrivacyNoticesFromUser lists the notices of every app the user is
// related to.
func (h *HttpEndpoints) getPrivacyNoticesFromUser(c *gin.Context) {
	userID, ok := requireQueryParam(c, "userId")
	if !ok {
		return
	}
	if !requireSelf(c, userID) {
		return
	}

	appIDs, err := h.appIDsOfUser(userID)
	if err != nil {
		slog.Error("failed to load relations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	notices, err := h.appDBConn.GetPrivacyNoticesForApps(appIDs)
	if err != nil {
		slog.Error("failed to load privacy notices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, notices)
}

type updatePrivacyNoticeReq struct {
	Text string `json:"text"`
}

// updatePrivacyNoticeFromApp replaces the app's privacy notice and notifies
// every subject of the app about the new text.
func (h *HttpEndpoints) updatePrivacyNoticeFromApp(c *gin.Context) {
	appID, ok := requireQueryParam(c, "appId")
	if !ok {
		return
	}
	if !h.requireAppAccess(c, appID) {
		return
	}

	var req updatePrivacyNoticeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing text"})
		return
	}

	app, err := h.appDBConn.GetAppByID(appID)
	if err != nil {
		slog.Warn("app not found", slog.String("appID", appID))
		c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
		return
	}

	notice, err := h.appDBConn.UpsertPrivacyNoticeForApp(appID, app.Name, req.Text)
	if err != nil {
		slog.Error("failed to save privacy notice", slog.String("appID", appID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.notifySubjectsAboutPrivacyNotice(mw.GetPrincipal(c), app.Name, appID, notice.ID.Hex())

	c.JSON(http.StatusOK, notice)
}

func (h *HttpEndpoints) notifySubjectsAboutPrivacyNotice(principal mw.Principal, appName string, appID string, noticeID string) {
	subjects, err := h.usersOfAppWithRole(appID, userDB.ROLE_SUBJECT)
	if err != nil {
		slog.Error("failed to load subjects for privacy notice notification", slog.String("appID", appID), slog.String("error", err.Error()))
		return
	}

	for _, subject := range subjects {
		if _, err := notifier.Notify(commDB.Notification{
			SenderID:     principal.ID,
			SenderName:   principal.Name,
			ReceiverID:   subject.ID.Hex(),
			ReceiverName: subject.Name,
			Description:  "The privacy notice of " + appName + " changed",
			Type:         commDB.NOTIFICATION_TYPE_PRIVACY_NOTICE,
			ObjectID:     noticeID,
		}); err != nil {
			slog.Error("failed to create privacy notice notification", slog.String("receiverID", subject.ID.Hex()), slog.String("error", err.Error()))
		}
	}
}
