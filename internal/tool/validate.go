package tool

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"unicode"
)

// Validation failures, raised before any upstream call.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidEmailFormat   = errors.New("invalid email format")
	ErrTooManyRecipients    = errors.New("too many recipients")
	ErrInvalidTagFormat     = errors.New("invalid tag format")
	ErrMissingContent       = errors.New("missing content")
	ErrMissingIdentifier    = errors.New("missing identifier")
)

const maxTagLen = 256

// AddressList accepts either a single address string or an array of them.
type AddressList []string

func (a *AddressList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = AddressList{single}

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected an email address or a list of them: %w", err)
	}
	*a = AddressList(list)

	return nil
}

// Tag is a name/value pair attached to an outgoing email.
type Tag struct {
	Name  string `json:"name" jsonschema:"tag name, ASCII only, max 256 characters"`
	Value string `json:"value" jsonschema:"tag value, ASCII only, max 256 characters"`
}

func validateAddress(field, addr string) error {
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return fmt.Errorf("%w: %s %q", ErrInvalidEmailFormat, field, addr)
	}

	return nil
}

func validateAddresses(field string, addrs []string) error {
	for _, addr := range addrs {
		if err := validateAddress(field, addr); err != nil {
			return err
		}
	}

	return nil
}

func validateTags(tags []Tag) error {
	for _, t := range tags {
		if err := validateTagString("name", t.Name); err != nil {
			return err
		}
		if err := validateTagString("value", t.Value); err != nil {
			return err
		}
	}

	return nil
}

func validateTagString(field, s string) error {
	if len(s) > maxTagLen {
		return fmt.Errorf("%w: tag %s exceeds %d characters", ErrInvalidTagFormat, field, maxTagLen)
	}
	for _, r := range s {
		if r > unicode.MaxASCII {
			return fmt.Errorf("%w: tag %s contains non-ASCII character %q", ErrInvalidTagFormat, field, r)
		}
	}

	return nil
}
