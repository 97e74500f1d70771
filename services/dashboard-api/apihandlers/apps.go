package apihandlers

import (
	"log/slog"
	"net/http"

	mw "github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers/middlewares"
	"github.com/AlbertoHugonin/privacydashboard/pkg/questionnaire"
	"github.com/gin-gonic/gin"

	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

// requireAppAccess checks the principal has a relation to the app. App data
// is only visible from inside the app's user base.
func (h *HttpEndpoints) requireAppAccess(c *gin.Context, appID string) bool {
	principal := mw.GetPrincipal(c)
	if h.userHasRelationToApp(principal.ID, appID) {
		return true
	}
	slog.Warn("attempt to access app without relation",
		slog.String("userID", principal.ID),
		slog.String("appID", appID))
	c.JSON(http.StatusForbidden, gin.H{"error": "no relation to this app"})
	return false
}

func (h *HttpEndpoints) getApp(c *gin.Context) {
	appID, ok := requireQueryParam(c, "appId")
	if !ok {
		return
	}
	if !h.requireAppAccess(c, appID) {
		return
	}

	app, err := h.appDBConn.GetAppByID(appID)
	if err != nil {
		slog.Warn("app not found", slog.String("appID", appID), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
		return
	}
	c.JSON(http.StatusOK, app)
}

// updateAppReq is a partial update: absent fields stay untouched, so the
// questionnaire page can save {questionnaireVote, detailVote,
// optionalAnswers} without carrying the app's name or consent texts. A
// client-supplied questionnaireVote is ignored, the server recomputes it.
type updateAppReq struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	Consenses       []string  `json:"consenses"`
	DetailVote      []*string `json:"detailVote"`
	OptionalAnswers []*string `json:"optionalAnswers"`
}

func (r updateAppReq) hasDetails() bool {
	return r.Name != nil || r.Description != nil || r.Consenses != nil
}

func (r updateAppReq) hasQuestionnaire() bool {
	return r.DetailVote != nil || r.OptionalAnswers != nil
}

// updateApp applies a partial app update. When the payload carries answers
// the whole answer set is replaced and the vote recomputed, so stored vote
// and stored answers cannot disagree.
func (h *HttpEndpoints) updateApp(c *gin.Context) {
	appID, ok := requireQueryParam(c, "appId")
	if !ok {
		return
	}
	if !h.requireAppAccess(c, appID) {
		return
	}

	var req updateAppReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name != nil && *req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "app name cannot be empty"})
		return
	}
	if !req.hasDetails() && !req.hasQuestionnaire() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty update"})
		return
	}

	if req.hasDetails() {
		if err := h.appDBConn.UpdateAppDetails(appID, req.Name, req.Description, req.Consenses); err != nil {
			slog.Error("failed to update app", slog.String("appID", appID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
	}

	vote := ""
	if req.hasQuestionnaire() {
		answers := questionnaire.AnswerSetFromStored(h.catalog, req.DetailVote, req.OptionalAnswers)
		result := questionnaire.Evaluate(h.catalog, answers)
		vote = string(result.Vote)
		if err := h.appDBConn.SaveQuestionnaire(
			appID,
			vote,
			answers.StoredAnswers(),
			answers.StoredOptionalAnswers(h.catalog),
		); err != nil {
			slog.Error("failed to save questionnaire", slog.String("appID", appID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
	}

	app, err := h.appDBConn.GetAppByID(appID)
	if err != nil {
		slog.Error("failed to reload app", slog.String("appID", appID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("app updated", slog.String("appID", appID), slog.String("vote", vote))
	c.JSON(http.StatusOK, app)
}

func (h *HttpEndpoints) getControllersOfApp(c *gin.Context) {
	h.getUsersOfAppByRole(c, userDB.ROLE_CONTROLLER)
}

func (h *HttpEndpoints) getDPOsOfApp(c *gin.Context) {
	h.getUsersOfAppByRole(c, userDB.ROLE_DPO)
}

func (h *HttpEndpoints) getSubjectsOfApp(c *gin.Context) {
	h.getUsersOfAppByRole(c, userDB.ROLE_SUBJECT)
}

func (h *HttpEndpoints) getUsersOfAppByRole(c *gin.Context, role string) {
	appID, ok := requireQueryParam(c, "appId")
	if !ok {
		return
	}
	if !h.requireAppAccess(c, appID) {
		return
	}

	users, err := h.usersOfAppWithRole(appID, role)
	if err != nil {
		slog.Error("failed to load users of app", slog.String("appID", appID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}
