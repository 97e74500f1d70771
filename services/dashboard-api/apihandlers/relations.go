package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

func (h *HttpEndpoints) getUserAppRelation(c *gin.Context) {
	userID, ok := requireQueryParam(c, "userId")
	if !ok {
		return
	}
	appID, ok := requireQueryParam(c, "appId")
	if !ok {
		return
	}
	// controllers and DPOs may inspect the consent state of their subjects
	if !requireSelfOrRole(c, userID, userDB.ROLE_CONTROLLER, userDB.ROLE_DPO) {
		return
	}

	relation, err := h.appDBConn.GetUserAppRelation(userID, appID)
	if err != nil {
		slog.Warn("relation not found", slog.String("userID", userID), slog.String("appID", appID))
		c.JSON(http.StatusNotFound, gin.H{"error": "relation not found"})
		return
	}
	c.JSON(http.StatusOK, relation)
}

type consensesReq struct {
	Consenses []string `json:"consenses"`
}

// addConsenses records that the user accepted the given consent texts.
// Consent is personal, only the user itself can change it.
func (h *HttpEndpoints) addConsenses(c *gin.Context) {
	h.changeConsenses(c, func(userID string, appID string, consenses []string) error {
		return h.appDBConn.AddConsenses(userID, appID, consenses)
	})
}

func (h *HttpEndpoints) removeConsenses(c *gin.Context) {
	h.changeConsenses(c, func(userID string, appID string, consenses []string) error {
		return h.appDBConn.RemoveConsenses(userID, appID, consenses)
	})
}

func (h *HttpEndpoints) changeConsenses(c *gin.Context, apply func(userID string, appID string, consenses []string) error) {
	userID, ok := requireQueryParam(c, "userId")
	if !ok {
		return
	}
	appID, ok := requireQueryParam(c, "appId")
	if !ok {
		return
	}
	if !requireSelf(c, userID) {
		return
	}

	var req consensesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Consenses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing consenses"})
		return
	}

	if _, err := h.appDBConn.GetUserAppRelation(userID, appID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "relation not found"})
		return
	}

	if err := apply(userID, appID, req.Consenses); err != nil {
		slog.Error("failed to change consenses", slog.String("userID", userID), slog.String("appID", appID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	relation, err := h.appDBConn.GetUserAppRelation(userID, appID)
	if err != nil {
		slog.Error("failed to reload relation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, relation)
}

// removeAllConsenses withdraws every consent of the user for the app, e.g.
// as follow-up of a WITHDRAWCONSENT right request.
func (h *HttpEndpoints) removeAllConsenses(c *gin.Context) {
	userID, ok := requireQueryParam(c, "userId")
	if !ok {
		return
	}
	appID, ok := requireQueryParam(c, "appId")
	if !ok {
		return
	}
	if !requireSelf(c, userID) {
		return
	}

	if _, err := h.appDBConn.GetUserAppRelation(userID, appID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "relation not found"})
		return
	}

	if err := h.appDBConn.RemoveAllConsenses(userID, appID); err != nil {
		slog.Error("failed to remove consenses", slog.String("userID", userID), slog.String("appID", appID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
