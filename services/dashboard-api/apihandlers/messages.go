package apihandlers

import (
	"log/slog"
	"net/http"

	mw "github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers/middlewares"
	"github.com/AlbertoHugonin/privacydashboard/pkg/notifier"
	"github.com/gin-gonic/gin"

	commDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/communication"
)

type addMessageReq struct {
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`
}

// addMessage stores the message and notifies the receiver. The sender is
// always the principal, a senderId in the payload would be ignored.
func (h *HttpEndpoints) addMessage(c *gin.Context) {
	principal := mw.GetPrincipal(c)

	var req addMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ReceiverID == "" || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	receiver, err := h.userDBConn.GetUserByID(req.ReceiverID)
	if err != nil {
		slog.Warn("message to unknown receiver", slog.String("receiverID", req.ReceiverID))
		c.JSON(http.StatusNotFound, gin.H{"error": "receiver not found"})
		return
	}

	message, err := h.commDBConn.AddMessage(commDB.Message{
		SenderID:     principal.ID,
		SenderName:   principal.Name,
		ReceiverID:   receiver.ID.Hex(),
		ReceiverName: receiver.Name,
		Text:         req.Text,
	})
	if err != nil {
		slog.Error("failed to store message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if _, err := notifier.Notify(commDB.Notification{
		SenderID:     principal.ID,
		SenderName:   principal.Name,
		ReceiverID:   receiver.ID.Hex(),
		ReceiverName: receiver.Name,
		Description:  "New message from " + principal.Name,
		Type:         commDB.NOTIFICATION_TYPE_MESSAGE,
		ObjectID:     message.ID.Hex(),
	}); err != nil {
		slog.Error("failed to create notification for message", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusCreated, message)
}

func (h *HttpEndpoints) getConversation(c *gin.Context) {
	user1ID, ok := requireQueryParam(c, "user1Id")
	if !ok {
		return
	}
	user2ID, ok := requireQueryParam(c, "user2Id")
	if !ok {
		return
	}

	principal := mw.GetPrincipal(c)
	if principal.ID != user1ID && principal.ID != user2ID {
		slog.Warn("attempt to read foreign conversation", slog.String("userID", principal.ID))
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed for this user"})
		return
	}

	messages, err := h.commDBConn.GetConversation(user1ID, user2ID)
	if err != nil {
		slog.Error("failed to load conversation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

type Conversation struct {
	ContactID   string           `json:"contactId"`
	ContactName string           `json:"contactName"`
	Messages    []commDB.Message `json:"messages"`
}

// getAllMessagesFromUser returns the user's messages grouped into one
// conversation per contact, ordered by most recent activity. Messages
// inside a conversation are newest first.
func (h *HttpEndpoints) getAllMessagesFromUser(c *gin.Context) {
	userID, ok := requireQueryParam(c, "userId")
	if !ok {
		return
	}
	if !requireSelf(c, userID) {
		return
	}

	messages, err := h.commDBConn.GetMessagesForUser(userID)
	if err != nil {
		slog.Error("failed to load messages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, groupMessagesByContact(userID, messages))
}

// groupMessagesByContact splits a newest-first message list into one
// conversation per contact. Conversation order follows the most recent
// message of each contact.
func groupMessagesByContact(userID string, messages []commDB.Message) []Conversation {
	conversations := []Conversation{}
	indexByContact := map[string]int{}
	for _, message := range messages {
		contactID := message.SenderID
		contactName := message.SenderName
		if contactID == userID {
			contactID = message.ReceiverID
			contactName = message.ReceiverName
		}

		index, found := indexByContact[contactID]
		if !found {
			index = len(conversations)
			indexByContact[contactID] = index
			conversations = append(conversations, Conversation{
				ContactID:   contactID,
				ContactName: contactName,
			})
		}
		conversations[index].Messages = append(conversations[index].Messages, message)
	}
	return conversations
}
