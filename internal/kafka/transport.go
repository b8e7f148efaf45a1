// Package kafka builds the connections used to publish directory events.
package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"go.uber.org/zap"
)

const dialTimeout = 10 * time.Second

// Credentials enable SASL/PLAIN over TLS when both fields are set
type Credentials struct {
	Username string
	Password string
}

// Enabled reports whether SASL should be configured
func (c Credentials) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

// NewDialer returns the dialer used for broker checks
func NewDialer(creds Credentials) *kafka.Dialer {
	dialer := &kafka.Dialer{
		Timeout:   dialTimeout,
		DualStack: true,
	}
	if creds.Enabled() {
		dialer.SASLMechanism = plain.Mechanism{Username: creds.Username, Password: creds.Password}
		dialer.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return dialer
}

// NewTransport returns the writer transport, with the same SASL/TLS settings as NewDialer
func NewTransport(creds Credentials) *kafka.Transport {
	transport := &kafka.Transport{
		DialTimeout: dialTimeout,
	}
	if creds.Enabled() {
		transport.SASL = plain.Mechanism{Username: creds.Username, Password: creds.Password}
		transport.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return transport
}

// DialFunc opens a connection to one broker
type DialFunc func(ctx context.Context, network, address string) (*kafka.Conn, error)

// WaitForBroker tries to reach the first broker up to attempts times, pausing between tries
func WaitForBroker(ctx context.Context, dial DialFunc, brokers []string, attempts int, pause time.Duration, logger *zap.Logger) error {
	if len(brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 1; i <= attempts; i++ {
		logger.Info("Kafka connection attempt",
			zap.Int("attempt", i),
			zap.Int("of", attempts),
			zap.String("broker", brokers[0]))

		var conn *kafka.Conn
		conn, err = dial(ctx, "tcp", brokers[0])
		if err == nil {
			if conn != nil {
				_ = conn.Close()
			}
			return nil
		}
		if i < attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pause):
			}
		}
	}
	return err
}
