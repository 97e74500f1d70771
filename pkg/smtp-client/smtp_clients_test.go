package smtp_client

import (
	"sync"
	"testing"
)

func TestNewSmtpClientsWithoutServers(t *testing.T) {
	_, err := NewSmtpClients(SmtpServerList{From: "noreply@privacydashboard.local"})
	if err == nil {
		t.Error("expected an error when no SMTP server is configured")
	}
}

// Notification fan-out calls SendMail from one goroutine per receiver, so
// concurrent calls must be safe. Run with the race detector.
func TestSendMailConcurrently(t *testing.T) {
	sc := &SmtpClients{servers: SmtpServerList{From: "noreply@privacydashboard.local"}}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sc.SendMail([]string{"subject@privacydashboard.local"}, "New notification", "hello"); err == nil {
				t.Error("expected an error without configured servers")
			}
		}()
	}
	wg.Wait()
}
