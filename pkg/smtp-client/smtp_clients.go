package smtp_client

import (
	"crypto/tls"
	"errors"
	"log/slog"
	"net/smtp"
	"sync"
	"time"

	"github.com/knadh/smtppool"
)

type SmtpClients struct {
	servers SmtpServerList

	// mu guards connectionPool and counter, SendMail runs concurrently
	mu             sync.Mutex
	connectionPool []*smtppool.Pool
	counter        uint64
}

func NewSmtpClients(config SmtpServerList) (*SmtpClients, error) {
	pools := initConnectionPool(config)
	if len(pools) < 1 {
		return nil, errors.New("no smtp server connection in the pool")
	}

	return &SmtpClients{
		servers:        config,
		counter:        0,
		connectionPool: pools,
	}, nil
}

func initConnectionPool(serverList SmtpServerList) []*smtppool.Pool {
	connectionPools := []*smtppool.Pool{}
	for _, server := range serverList.Servers {
		pool, err := connectToPool(server)
		if err != nil {
			slog.Error("error setting up connection pool", slog.String("error", err.Error()), slog.String("host", server.Host))
			continue
		}
		connectionPools = append(connectionPools, pool)
	}
	return connectionPools
}

func connectToPool(server SmtpServer) (*smtppool.Pool, error) {
	auth := smtp.PlainAuth(
		"",
		server.AuthData.Username,
		server.AuthData.Password,
		server.Host,
	)
	if server.AuthData.Username == "" && server.AuthData.Password == "" {
		auth = nil
	}

	tlsOpts := &tls.Config{
		InsecureSkipVerify: server.InsecureSkipVerify,
		ServerName:         server.Host,
	}

	return smtppool.New(smtppool.Opt{
		Host:            server.Host,
		Port:            server.Port,
		MaxConns:        server.Connections,
		IdleTimeout:     time.Duration(server.SendTimeout) * time.Second,
		PoolWaitTimeout: time.Duration(server.SendTimeout) * time.Second,
		TLSConfig:       tlsOpts,
		Auth:            auth,
	})
}

// SendMail sends a plain-text email through one of the pooled connections,
// round-robin over the configured servers. Safe for concurrent use.
func (sc *SmtpClients) SendMail(to []string, subject string, content string) error {
	sc.mu.Lock()
	if len(sc.connectionPool) < 1 {
		sc.connectionPool = initConnectionPool(sc.servers)
		if len(sc.connectionPool) < 1 {
			sc.mu.Unlock()
			return errors.New("no smtp servers available")
		}
	}

	sc.counter += 1
	index := int(sc.counter) % len(sc.connectionPool)
	selectedPool := sc.connectionPool[index]
	sc.mu.Unlock()

	err := selectedPool.Send(smtppool.Email{
		From:    sc.servers.From,
		To:      to,
		ReplyTo: sc.servers.ReplyTo,
		Subject: subject,
		Text:    []byte(content),
	})
	if err != nil {
		slog.Error("error when trying to send email", slog.String("error", err.Error()))

		// close and try to reconnect
		pool, errReconnect := connectToPool(sc.servers.Servers[index])
		if errReconnect != nil {
			slog.Error("cannot reconnect pool", slog.String("error", errReconnect.Error()), slog.String("host", sc.servers.Servers[index].Host))
		} else {
			sc.mu.Lock()
			if index < len(sc.connectionPool) {
				sc.connectionPool[index] = pool
			}
			sc.mu.Unlock()
		}
	}
	return err
}
