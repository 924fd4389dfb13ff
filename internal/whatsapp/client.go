package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://graph.facebook.com/v18.0"

// Client sends messages through the WhatsApp Cloud API. Sends are
// fire-and-forget notifications, not a guaranteed-delivery channel;
// callers log failures and move on.
type Client struct {
	token         string
	phoneNumberID string
	baseURL       string
	http          *http.Client
	log           *logrus.Logger
}

func New(token, phoneNumberID string, log *logrus.Logger) *Client {
	return &Client{
		token:         token,
		phoneNumberID: phoneNumberID,
		baseURL:       defaultBaseURL,
		http:          &http.Client{Timeout: 30 * time.Second},
		log:           log,
	}
}

// NewWithBaseURL points the client at a different API host. Used by
// tests to target a local server.
func NewWithBaseURL(token, phoneNumberID, baseURL string, log *logrus.Logger) *Client {
	c := New(token, phoneNumberID, log)
	c.baseURL = baseURL
	return c
}

type textPayload struct {
	Body string `json:"body"`
}

type sendRequest struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

// SendText posts one text message to a recipient.
func (c *Client) SendText(ctx context.Context, to, text string) error {
	body, err := json.Marshal(sendRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textPayload{Body: text},
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("whatsapp send failed")
		return fmt.Errorf("whatsapp status %d: %s", resp.StatusCode, respBody)
	}

	c.log.WithField("to", to).Debug("whatsapp message sent")
	return nil
}
