package apihandlers

import (
	"net/http"
	"time"

	mw "github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers/middlewares"
	"github.com/AlbertoHugonin/privacydashboard/pkg/questionnaire"
	"github.com/gin-gonic/gin"

	appDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/app"
	commDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/communication"
	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	tokenSignKey   string
	tokenExpiresIn time.Duration

	userDBConn *userDB.DashboardUserDBService
	appDBConn  *appDB.AppDBService
	commDBConn *commDB.CommunicationDBService

	catalog questionnaire.Catalog
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	userDBConn *userDB.DashboardUserDBService,
	appDBConn *appDB.AppDBService,
	commDBConn *commDB.CommunicationDBService,
) *HttpEndpoints {
	catalog := questionnaire.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		panic(err)
	}

	return &HttpEndpoints{
		tokenSignKey:   tokenSignKey,
		tokenExpiresIn: tokenExpiresIn,
		userDBConn:     userDBConn,
		appDBConn:      appDBConn,
		commDBConn:     commDBConn,
		catalog:        catalog,
	}
}

// AddSessionAPI registers the endpoints reachable without a session.
func (h *HttpEndpoints) AddSessionAPI(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
	rg.POST("/login/token", mw.RequirePayload(), h.loginForToken)
	rg.POST("/logout", h.logout)
}

// AddDashboardAPI registers the session-guarded /api surface. Paths mirror
// the dashboard web client.
func (h *HttpEndpoints) AddDashboardAPI(rg *gin.RouterGroup) {
	api := rg.Group("/api")
	api.Use(mw.SessionAuthMiddleware(h.userDBConn, h.tokenSignKey))

	userGroup := api.Group("/user")
	{
		userGroup.GET("/me", h.getMe)
		userGroup.GET("/getApps", h.getAppsOfUser)
		userGroup.GET("/getAllContacts", h.getAllContacts)
		userGroup.GET("/getCommonApps", h.getCommonApps)
		userGroup.POST("/logoutEverywhere", h.logoutEverywhere)
	}

	appGroup := api.Group("/app")
	{
		appGroup.GET("/get", h.getApp)
		appGroup.PUT("/update", mw.RequireRole(userDB.ROLE_CONTROLLER, userDB.ROLE_DPO), mw.RequirePayload(), h.updateApp)
		appGroup.GET("/getControllers", h.getControllersOfApp)
		appGroup.GET("/getDPOs", h.getDPOsOfApp)
		appGroup.GET("/getSubjects", mw.RequireRole(userDB.ROLE_CONTROLLER, userDB.ROLE_DPO), h.getSubjectsOfApp)
	}

	relationGroup := api.Group("/userapprelation")
	{
		relationGroup.GET("/get", h.getUserAppRelation)
		relationGroup.POST("/addConsenses", mw.RequirePayload(), h.addConsenses)
		relationGroup.DELETE("/removeConsenses", mw.RequirePayload(), h.removeConsenses)
		relationGroup.DELETE("/removeAllConsenses", h.removeAllConsenses)
	}

	messageGroup := api.Group("/message")
	{
		messageGroup.GET("/getAllMessagesFromUser", h.getAllMessagesFromUser)
		messageGroup.GET("/getConversation", h.getConversation)
		messageGroup.POST("/add", mw.RequirePayload(), h.addMessage)
	}

	notificationGroup := api.Group("/notification")
	{
		notificationGroup.GET("/getAllFromUser", h.getAllNotificationsFromUser)
		notificationGroup.POST("/changeIsRead", h.changeNotificationIsRead)
		notificationGroup.DELETE("/delete", h.deleteNotification)
	}

	privacyNoticeGroup := api.Group("/privacynotice")
	{
		privacyNoticeGroup.GET("/get", h.getPrivacyNotice)
		privacyNoticeGroup.GET("/getFromApp", h.getPrivacyNoticeFromApp)
		privacyNoticeGroup.GET("/getFromUser", h.getPrivacyNoticesFromUser)
		privacyNoticeGroup.PUT("/updateFromApp", mw.RequireRole(userDB.ROLE_CONTROLLER, userDB.ROLE_DPO), mw.RequirePayload(), h.updatePrivacyNoticeFromApp)
	}

	rightRequestGroup := api.Group("/rightrequest")
	{
		rightRequestGroup.GET("/getAllFromUser", h.getAllRightRequestsFromUser)
		rightRequestGroup.POST("/add", mw.RequirePayload(), h.addRightRequest)
		rightRequestGroup.POST("/addResponse", mw.RequireRole(userDB.ROLE_CONTROLLER, userDB.ROLE_DPO), mw.RequirePayload(), h.addRightRequestResponse)
		rightRequestGroup.POST("/changeHandled", mw.RequireRole(userDB.ROLE_CONTROLLER, userDB.ROLE_DPO), h.changeRightRequestHandled)
	}

	questionnaireGroup := api.Group("/questionnaire")
	{
		questionnaireGroup.GET("/catalog", h.getQuestionnaireCatalog)
	}
}
