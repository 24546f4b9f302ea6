// Package config resolves the process-wide Resend credential and sending defaults.
package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"
)

// Env variable fallbacks for the corresponding flags.
const (
	EnvAPIKey  = "RESEND_API_KEY"
	EnvSender  = "SENDER_EMAIL_ADDRESS"
	EnvReplyTo = "REPLY_TO_EMAIL_ADDRESSES"
)

// ErrMissingAPIKey indicates no Resend API key was provided via flag or env.
var ErrMissingAPIKey = errors.New("no Resend API key provided, set -key or " + EnvAPIKey)

// Defaults holds values fixed for the lifetime of the process.
// Constructed once at startup, read-only afterwards.
type Defaults struct {
	APIKey  string
	Sender  string
	ReplyTo []string
}

// Load builds Defaults from flag values, falling back to env variables.
// Flag values always win over env. Sender and reply-to addresses are
// syntax-checked here so bad configuration fails at startup, not mid-call.
func Load(key, sender, replyTo string) (*Defaults, error) {
	if key == "" {
		key = os.Getenv(EnvAPIKey)
	}
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	if sender == "" {
		sender = os.Getenv(EnvSender)
	}
	if sender != "" {
		if err := checkAddress(sender); err != nil {
			return nil, fmt.Errorf("invalid -sender: %w", err)
		}
	}

	if replyTo == "" {
		replyTo = os.Getenv(EnvReplyTo)
	}

	d := &Defaults{
		APIKey: key,
		Sender: sender,
	}

	for _, addr := range strings.Split(replyTo, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		if err := checkAddress(addr); err != nil {
			return nil, fmt.Errorf("invalid -reply-to: %w", err)
		}
		d.ReplyTo = append(d.ReplyTo, addr)
	}

	return d, nil
}

func checkAddress(addr string) error {
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return fmt.Errorf("address %q: %w", addr, err)
	}
	if parsed.Address != addr {
		return fmt.Errorf("address %q: display names are not accepted", addr)
	}

	return nil
}
