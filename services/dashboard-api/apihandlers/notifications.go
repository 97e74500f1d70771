package apihandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	mw "github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers/middlewares"
	"github.com/gin-gonic/gin"

	commDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/communication"
)

func (h *HttpEndpoints) getAllNotificationsFromUser(c *gin.Context) {
	userID, ok := requireQueryParam(c, "userId")
	if !ok {
		return
	}
	if !requireSelf(c, userID) {
		return
	}

	notifications, err := h.commDBConn.GetNotificationsForReceiver(userID)
	if err != nil {
		slog.Error("failed to load notifications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// changeNotificationIsRead toggles the read marker. The flag arrives as
// string query parameter, matching the dashboard client.
func (h *HttpEndpoints) changeNotificationIsRead(c *gin.Context) {
	notificationID, ok := requireQueryParam(c, "notificationId")
	if !ok {
		return
	}
	isReadString, ok := requireQueryParam(c, "isReadString")
	if !ok {
		return
	}
	isRead, err := strconv.ParseBool(isReadString)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid isReadString"})
		return
	}

	notification, ok := h.ownNotification(c, notificationID)
	if !ok {
		return
	}

	if err := h.commDBConn.SetNotificationIsRead(notification.ID.Hex(), isRead); err != nil {
		slog.Error("failed to update notification", slog.String("notificationID", notificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HttpEndpoints) deleteNotification(c *gin.Context) {
	notificationID, ok := requireQueryParam(c, "notificationId")
	if !ok {
		return
	}

	notification, ok := h.ownNotification(c, notificationID)
	if !ok {
		return
	}

	if err := h.commDBConn.DeleteNotification(notification.ID.Hex()); err != nil {
		slog.Error("failed to delete notification", slog.String("notificationID", notificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ownNotification loads the notification and checks it belongs to the
// principal. Writes the error response when it does not.
func (h *HttpEndpoints) ownNotification(c *gin.Context, notificationID string) (*commDB.Notification, bool) {
	notification, err := h.commDBConn.GetNotificationByID(notificationID)
	if err != nil {
		slog.Warn("notification not found", slog.String("notificationID", notificationID))
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return nil, false
	}

	principal := mw.GetPrincipal(c)
	if notification.ReceiverID != principal.ID {
		slog.Warn("attempt to access foreign notification",
			slog.String("userID", principal.ID),
			slog.String("notificationID", notificationID))
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed for this user"})
		return nil, false
	}
	return notification, true
}
