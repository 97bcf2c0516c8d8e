package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GenericRejectionMessage is shown when the webhook rejects an applicant
// without a parseable message body.
const GenericRejectionMessage = "invalid contact ID or no applications found"

// Result is the canonical contact data returned by the validation webhook.
// Both fields may be empty: a 200 with an empty body is a valid acceptance.
type Result struct {
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// RejectedError is a non-200 webhook answer: the applicant is not eligible.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// TransportError is a network-level failure reaching the webhook.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("validation service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type IClient interface {
	Validate(ctx context.Context, contactID, email string) (*Result, error)
}

type client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string, timeout time.Duration) IClient {
	return &client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Validate posts {contactId, email} form-encoded and interprets the answer:
// non-200 is a rejection (body parsed as {message} when possible), 200 is an
// acceptance whose optional JSON body carries the canonical contact data.
// Validation is idempotent and side-effect-free, so callers may simply retry.
func (c *client) Validate(ctx context.Context, contactID, email string) (*Result, error) {
	params := url.Values{}
	params.Add("contactId", contactID)
	params.Add("email", email)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var errData struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errData); err == nil && errData.Message != "" {
			return nil, &RejectedError{Message: errData.Message}
		}
		return nil, &RejectedError{Message: GenericRejectionMessage}
	}

	// Empty acceptance body is fine: contact/email stay blank.
	result := &Result{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return nil, &RejectedError{Message: GenericRejectionMessage}
		}
	}

	return result, nil
}

// IsRejection reports whether err means "not eligible" rather than a transport
// problem.
func IsRejection(err error) bool {
	var rejected *RejectedError
	return errors.As(err, &rejected)
}
