// Package mailer delivers one-time reset codes over SMTP.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"github.com/dajohi/goemail"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// Sender delivers a plaintext one-time code to an out-of-band address.
type Sender interface {
	SendOTP(ctx context.Context, to, code string, expiresAt time.Time) error
}

// Client is an SMTP-backed Sender. Dispatch is awaited: a send that still
// fails after the retry budget is reported to the caller instead of being
// swallowed, so the API can surface an internal error.
type Client struct {
	smtp       *goemail.SMTP
	from       string
	fromName   string
	timeout    time.Duration
	maxRetries uint64
	log        *zap.Logger
}

func New(config utils.EmailConfig, log *zap.Logger) (*Client, error) {
	h := fmt.Sprintf("smtps://%s:%s@%s:%d",
		url.QueryEscape(config.User),
		url.QueryEscape(config.Password),
		config.Host,
		config.Port,
	)
	u, err := url.Parse(h)
	if err != nil {
		return nil, fmt.Errorf("parse SMTP url: %w", err)
	}

	tlsConfig := &tls.Config{}
	if config.SkipVerify {
		tlsConfig.InsecureSkipVerify = true
	}

	smtp, err := goemail.NewSMTP(u.String(), tlsConfig)
	if err != nil {
		return nil, fmt.Errorf("init SMTP client: %w", err)
	}

	return &Client{
		smtp:       smtp,
		from:       config.From,
		fromName:   config.FromName,
		timeout:    time.Duration(config.DispatchTimeout) * time.Second,
		maxRetries: uint64(config.MaxRetries),
		log:        log.With(zap.String("component", "mailer")),
	}, nil
}

// SendOTP emails the code to the recipient. The code itself is never logged.
func (c *Client) SendOTP(ctx context.Context, to, code string, expiresAt time.Time) error {
	subject := "Your Travelwise password reset code"
	body := fmt.Sprintf(
		"Your one-time password reset code is: %s\n\n"+
			"It expires at %s. If you did not request a password reset, you can ignore this email.\n",
		code, expiresAt.UTC().Format(time.RFC1123),
	)

	msg := goemail.NewMessage(c.from, subject, body)
	msg.SetName(c.fromName)
	msg.AddTo(to)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	b := retry.WithMaxRetries(c.maxRetries, retry.NewFibonacci(500*time.Millisecond))

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := c.smtp.Send(msg); err != nil {
			c.log.Warn("SMTP send attempt failed", zap.Error(err), zap.String("to", to))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("send OTP email to %s: %w", to, err)
	}

	c.log.Info("OTP email dispatched", zap.String("to", to), zap.Time("expires_at", expiresAt))
	return nil
}
