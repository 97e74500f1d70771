package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	mw "github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers/middlewares"
	jwthandling "github.com/AlbertoHugonin/privacydashboard/pkg/jwt-handling"
	"github.com/AlbertoHugonin/privacydashboard/pkg/user-management/pwhash"
	umUtils "github.com/AlbertoHugonin/privacydashboard/pkg/user-management/utils"
	"github.com/gin-gonic/gin"

	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

const (
	loginFailedAttemptWindow = 5 * 60 // to count the login failures, seconds
	allowedPasswordAttempts  = 10
)

// checkCredentials resolves username/password to the user document. Every
// failure path looks identical to the caller so the response cannot leak
// whether the account exists.
func (h *HttpEndpoints) checkCredentials(username string, password string) (*userDB.DashboardUser, error) {
	username = umUtils.SanitizeUsername(username)
	if username == "" || password == "" {
		return nil, errors.New("missing credentials")
	}

	user, err := h.userDBConn.GetUserByUsername(username)
	if err != nil {
		slog.Warn("login attempt with unknown username", slog.String("username", username))
		randomWait(5, 10)
		return nil, errors.New("invalid username or password")
	}

	// drop attempts outside the throttling window so the stored array
	// stays bounded
	attempts := umUtils.RemoveAttemptsOlderThan(user.FailedLoginAttempts, loginFailedAttemptWindow)

	if umUtils.HasMoreAttemptsRecently(attempts, allowedPasswordAttempts, loginFailedAttemptWindow) {
		slog.Warn("login attempt with too many failed attempts", slog.String("username", username))
		h.saveFailedAttempt(user.ID.Hex(), attempts)
		randomWait(5, 10)
		return nil, errors.New("invalid username or password")
	}

	match, err := pwhash.ComparePasswordWithHash(user.Password, password)
	if err != nil || !match {
		slog.Warn("login attempt with wrong password", slog.String("username", username))
		h.saveFailedAttempt(user.ID.Hex(), attempts)
		randomWait(5, 10)
		return nil, errors.New("invalid username or password")
	}

	if err := h.userDBConn.MarkLoginSuccess(user.ID.Hex()); err != nil {
		slog.Error("failed to mark login success", slog.String("error", err.Error()))
	}
	return user, nil
}

func (h *HttpEndpoints) saveFailedAttempt(userID string, prunedAttempts []int64) {
	attempts := append(prunedAttempts, time.Now().Unix())
	if err := h.userDBConn.SaveFailedLoginAttempts(userID, attempts); err != nil {
		slog.Error("failed to save failed login attempt", slog.String("error", err.Error()))
	}
}

// login is the form-encoded browser login. On success a new session is
// created and its token set as HTTP-only cookie. Clients should not treat
// the response as proof of authentication but re-resolve /api/user/me.
func (h *HttpEndpoints) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.checkCredentials(username, password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	session, err := h.userDBConn.CreateSession(user.ID.Hex())
	if err != nil {
		slog.Error("failed to create session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(mw.SessionCookieName, session.Token, userDB.REMOVE_SESSIONS_AFTER, "/", "", true, true)

	slog.Info("user logged in", slog.String("userID", user.ID.Hex()))
	c.JSON(http.StatusOK, mw.Principal{
		ID:   user.ID.Hex(),
		Name: user.Name,
		Role: user.Role,
		Mail: user.Mail,
	})
}

type loginForTokenReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginForToken is the non-browser variant: instead of a cookie session the
// client gets a bearer JWT.
func (h *HttpEndpoints) loginForToken(c *gin.Context) {
	var req loginForTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.checkCredentials(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	token, err := jwthandling.GenerateNewDashboardUserToken(
		h.tokenExpiresIn,
		user.ID.Hex(),
		user.Name,
		user.Role,
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
		"expiresIn":   h.tokenExpiresIn.Seconds(),
	})
}

// logout invalidates the session server side where possible. The cookie is
// cleared in every case, an already gone session is not an error.
func (h *HttpEndpoints) logout(c *gin.Context) {
	if token, err := c.Cookie(mw.SessionCookieName); err == nil && token != "" {
		if err := h.userDBConn.DeleteSessionByToken(token); err != nil {
			slog.Debug("failed to delete session", slog.String("error", err.Error()))
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(mw.SessionCookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// logoutEverywhere invalidates every session of the principal, e.g. after a
// password change or a suspected stolen cookie. Bearer tokens stay valid
// until they expire.
func (h *HttpEndpoints) logoutEverywhere(c *gin.Context) {
	principal := mw.GetPrincipal(c)

	if err := h.userDBConn.DeleteSessionsByUserID(principal.ID); err != nil {
		slog.Error("failed to delete sessions", slog.String("userID", principal.ID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(mw.SessionCookieName, "", -1, "/", "", true, true)
	slog.Info("all sessions invalidated", slog.String("userID", principal.ID))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
