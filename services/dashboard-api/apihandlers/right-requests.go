package apihandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	mw "github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers/middlewares"
	"github.com/AlbertoHugonin/privacydashboard/pkg/notifier"
	"github.com/AlbertoHugonin/privacydashboard/pkg/utils"
	"github.com/gin-gonic/gin"

	appDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/app"
	commDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/communication"
	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

var knownRightTypes = []string{
	appDB.RIGHT_TYPE_WITHDRAW_CONSENT,
	appDB.RIGHT_TYPE_COMPLAIN,
	appDB.RIGHT_TYPE_ERASURE,
	appDB.RIGHT_TYPE_DELETE_EVERYTHING,
	appDB.RIGHT_TYPE_INFO,
	appDB.RIGHT_TYPE_PORTABILITY,
}

// right types whose meaning depends on the "other" field, e.g. the consent
// to withdraw or the topic of the complaint
var rightTypesRequiringOther = []string{
	appDB.RIGHT_TYPE_WITHDRAW_CONSENT,
	appDB.RIGHT_TYPE_ERASURE,
	appDB.RIGHT_TYPE_INFO,
	appDB.RIGHT_TYPE_COMPLAIN,
}

func (h *HttpEndpoints) getAllRightRequestsFromUser(c *gin.Context) {
	userID, ok := requireQueryParam(c, "userId")
	if !ok {
		return
	}
	if !requireSelf(c, userID) {
		return
	}

	requests, err := h.appDBConn.GetRightRequestsForUser(userID)
	if err != nil {
		slog.Error("failed to load right requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

type addRightRequestReq struct {
	AppID     string `json:"appId"`
	RightType string `json:"rightType"`
	Other     string `json:"other"`
	Details   string `json:"details"`
}

// addRightRequest files a GDPR right request for one of the principal's
// apps. The request is routed to a DPO of the app, or to a controller when
// the app has no DPO, and the receiver gets notified.
func (h *HttpEndpoints) addRightRequest(c *gin.Context) {
	principal := mw.GetPrincipal(c)

	var req addRightRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AppID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing appId"})
		return
	}
	if !utils.ContainsString(knownRightTypes, req.RightType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown right type"})
		return
	}
	if req.Other == "" && utils.ContainsString(rightTypesRequiringOther, req.RightType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing other field for this right type"})
		return
	}
	if !h.requireAppAccess(c, req.AppID) {
		return
	}

	app, err := h.appDBConn.GetAppByID(req.AppID)
	if err != nil {
		slog.Warn("app not found", slog.String("appID", req.AppID))
		c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
		return
	}

	receiver, err := h.findRightRequestReceiver(req.AppID)
	if err != nil {
		slog.Error("no receiver for right request", slog.String("appID", req.AppID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no responsible user for this app"})
		return
	}

	request, err := h.appDBConn.AddRightRequest(appDB.RightRequest{
		SenderID:     principal.ID,
		SenderName:   principal.Name,
		ReceiverID:   receiver.ID.Hex(),
		ReceiverName: receiver.Name,
		AppID:        req.AppID,
		AppName:      app.Name,
		RightType:    req.RightType,
		Other:        req.Other,
		Details:      req.Details,
	})
	if err != nil {
		slog.Error("failed to store right request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if _, err := notifier.Notify(commDB.Notification{
		SenderID:     principal.ID,
		SenderName:   principal.Name,
		ReceiverID:   receiver.ID.Hex(),
		ReceiverName: receiver.Name,
		Description:  "New " + request.RightType + " request for " + app.Name,
		Type:         commDB.NOTIFICATION_TYPE_REQUEST,
		ObjectID:     request.ID.Hex(),
	}); err != nil {
		slog.Error("failed to create notification for right request", slog.String("error", err.Error()))
	}

	slog.Info("right request filed",
		slog.String("requestID", request.ID.Hex()),
		slog.String("rightType", request.RightType),
		slog.String("appID", req.AppID))
	c.JSON(http.StatusCreated, request)
}

// findRightRequestReceiver picks a DPO of the app, falling back to a
// controller when the app has none.
func (h *HttpEndpoints) findRightRequestReceiver(appID string) (*userDB.DashboardUser, error) {
	dpos, err := h.usersOfAppWithRole(appID, userDB.ROLE_DPO)
	if err != nil {
		return nil, err
	}
	if len(dpos) > 0 {
		return &dpos[0], nil
	}

	controllers, err := h.usersOfAppWithRole(appID, userDB.ROLE_CONTROLLER)
	if err != nil {
		return nil, err
	}
	if len(controllers) > 0 {
		return &controllers[0], nil
	}
	return nil, errNoReceiver
}

type addRightRequestResponseReq struct {
	Response string `json:"response"`
}

// addRightRequestResponse records the answer of the responsible DPO or
// controller and notifies the requester.
func (h *HttpEndpoints) addRightRequestResponse(c *gin.Context) {
	requestID, ok := requireQueryParam(c, "requestId")
	if !ok {
		return
	}

	var req addRightRequestResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Response == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing response"})
		return
	}

	request, ok := h.ownRightRequest(c, requestID)
	if !ok {
		return
	}

	if err := h.appDBConn.SetRightRequestResponse(requestID, req.Response); err != nil {
		slog.Error("failed to save right request response", slog.String("requestID", requestID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	principal := mw.GetPrincipal(c)
	if _, err := notifier.Notify(commDB.Notification{
		SenderID:     principal.ID,
		SenderName:   principal.Name,
		ReceiverID:   request.SenderID,
		ReceiverName: request.SenderName,
		Description:  "Your " + request.RightType + " request got a response",
		Type:         commDB.NOTIFICATION_TYPE_REQUEST,
		ObjectID:     requestID,
	}); err != nil {
		slog.Error("failed to create notification for right request response", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HttpEndpoints) changeRightRequestHandled(c *gin.Context) {
	requestID, ok := requireQueryParam(c, "requestId")
	if !ok {
		return
	}
	isHandledString, ok := requireQueryParam(c, "isHandled")
	if !ok {
		return
	}
	isHandled, err := strconv.ParseBool(isHandledString)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid isHandled"})
		return
	}

	if _, ok := h.ownRightRequest(c, requestID); !ok {
		return
	}

	if err := h.appDBConn.SetRightRequestHandled(requestID, isHandled); err != nil {
		slog.Error("failed to update right request", slog.String("requestID", requestID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ownRightRequest loads the request and checks the principal is its
// receiver. Writes the error response when the check fails.
func (h *HttpEndpoints) ownRightRequest(c *gin.Context, requestID string) (*appDB.RightRequest, bool) {
	request, err := h.appDBConn.GetRightRequestByID(requestID)
	if err != nil {
		slog.Warn("right request not found", slog.String("requestID", requestID))
		c.JSON(http.StatusNotFound, gin.H{"error": "right request not found"})
		return nil, false
	}

	principal := mw.GetPrincipal(c)
	if request.ReceiverID != principal.ID {
		slog.Warn("attempt to access foreign right request",
			slog.String("userID", principal.ID),
			slog.String("requestID", requestID))
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed for this user"})
		return nil, false
	}
	return request, true
}
