package notifier

import (
	"fmt"
	"log/slog"

	commDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/communication"
	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
	smtpclient "github.com/AlbertoHugonin/privacydashboard/pkg/smtp-client"
)

var (
	communicationDBService *commDB.CommunicationDBService
	dashboardUserDBService *userDB.DashboardUserDBService
	smtpClients            *smtpclient.SmtpClients
)

func Init(
	communicationDB *commDB.CommunicationDBService,
	dashboardUsersDB *userDB.DashboardUserDBService,
	smtp *smtpclient.SmtpClients,
) {
	communicationDBService = communicationDB
	dashboardUserDBService = dashboardUsersDB
	smtpClients = smtp
}

// Notify persists an in-app notification for the receiver and, when an SMTP
// pool is configured and the receiver has a mail address, sends a short
// email about it. Email delivery is best effort: failures are logged and
// never propagated, the in-app notification is the source of truth.
func Notify(notification commDB.Notification) (*commDB.Notification, error) {
	saved, err := communicationDBService.AddNotification(notification)
	if err != nil {
		return nil, err
	}

	go sendNotificationEmail(*saved)

	return saved, nil
}

func sendNotificationEmail(notification commDB.Notification) {
	if smtpClients == nil {
		return
	}

	receiver, err := dashboardUserDBService.GetUserByID(notification.ReceiverID)
	if err != nil {
		slog.Debug("cannot load receiver for notification email", slog.String("receiverID", notification.ReceiverID), slog.String("error", err.Error()))
		return
	}
	if receiver.Mail == "" {
		return
	}

	subject := fmt.Sprintf("Privacy dashboard: new %s notification", notification.Type)
	content := fmt.Sprintf("Hello %s,\n\n%s\n\nSent by %s.\n", receiver.Name, notification.Description, notification.SenderName)

	if err := smtpClients.SendMail([]string{receiver.Mail}, subject, content); err != nil {
		slog.Error("failed to send notification email", slog.String("receiverID", notification.ReceiverID), slog.String("error", err.Error()))
	}
}
