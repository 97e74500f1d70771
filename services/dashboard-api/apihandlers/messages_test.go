package apihandlers

import (
	"testing"
	"time"

	commDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/communication"
)

func TestGroupMessagesByContact(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	msg := func(senderID, senderName, receiverID, receiverName, text string, minutesAgo int) commDB.Message {
		return commDB.Message{
			SenderID:     senderID,
			SenderName:   senderName,
			ReceiverID:   receiverID,
			ReceiverName: receiverName,
			Text:         text,
			Time:         base.Add(-time.Duration(minutesAgo) * time.Minute),
		}
	}

	// newest first, as the DB layer returns them
	messages := []commDB.Message{
		msg("u2", "Controller", "u1", "Subject", "latest from controller", 0),
		msg("u1", "Subject", "u3", "DPO", "question to dpo", 5),
		msg("u1", "Subject", "u2", "Controller", "older to controller", 10),
		msg("u3", "DPO", "u1", "Subject", "oldest from dpo", 20),
	}

	conversations := groupMessagesByContact("u1", messages)

	if len(conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(conversations))
	}

	t.Run("ordered by most recent activity", func(t *testing.T) {
		if conversations[0].ContactID != "u2" || conversations[1].ContactID != "u3" {
			t.Errorf("unexpected conversation order: %s, %s", conversations[0].ContactID, conversations[1].ContactID)
		}
		if conversations[0].ContactName != "Controller" {
			t.Errorf("unexpected contact name: %s", conversations[0].ContactName)
		}
	})

	t.Run("messages grouped per contact, newest first", func(t *testing.T) {
		u2Conv := conversations[0]
		if len(u2Conv.Messages) != 2 {
			t.Fatalf("expected 2 messages with u2, got %d", len(u2Conv.Messages))
		}
		if u2Conv.Messages[0].Text != "latest from controller" || u2Conv.Messages[1].Text != "older to controller" {
			t.Errorf("unexpected message order: %q, %q", u2Conv.Messages[0].Text, u2Conv.Messages[1].Text)
		}

		u3Conv := conversations[1]
		if len(u3Conv.Messages) != 2 {
			t.Fatalf("expected 2 messages with u3, got %d", len(u3Conv.Messages))
		}
	})

	t.Run("no messages yields no conversations", func(t *testing.T) {
		if got := groupMessagesByContact("u1", nil); len(got) != 0 {
			t.Errorf("expected empty result, got %d conversations", len(got))
		}
	})
}
