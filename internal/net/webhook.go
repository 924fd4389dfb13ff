package net

import (
	"context"
	"net/http"
	"time"

	"twigane/internal/models"
)

const webhookObjectType = "whatsapp_business_account"

func (n *Net) handleWebhook(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		n.verifyWebhook(w, r)
	case http.MethodPost:
		n.receiveWebhook(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// verifyWebhook is the provider's subscription handshake: echo the
// challenge verbatim iff the mode and pre-shared token match.
func (n *Net) verifyWebhook(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode := q.Get("hub.mode")
	token := q.Get("hub.verify_token")
	challenge := q.Get("hub.challenge")

	if mode == "subscribe" && token == n.verifyToken {
		n.log.Info("webhook verified successfully")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(challenge))
		return
	}

	http.Error(w, "Forbidden", http.StatusForbidden)
}

// receiveWebhook acknowledges receipt before message processing runs;
// the provider retries or disables webhooks that return errors, so
// internal failures must never surface here. Only an unreadable payload
// yields 500.
func (n *Net) receiveWebhook(w http.ResponseWriter, r *http.Request) {
	var envelope models.WebhookEnvelope
	if err := readJSON(r, &envelope); err != nil {
		n.log.WithError(err).Error("failed to decode webhook payload")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if envelope.Object == webhookObjectType {
		for _, entry := range envelope.Entry {
			for _, change := range entry.Changes {
				if change.Field != "messages" {
					continue
				}
				for _, msg := range change.Value.Messages {
					go n.handleInboundMessage(msg)
				}
			}
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("EVENT_RECEIVED"))
}

// handleInboundMessage replies to one inbound message. Only text is
// answered; other types are dropped without a reply. Send failures are
// logged and swallowed, never retried.
func (n *Net) handleInboundMessage(msg models.InboundMessage) {
	if msg.Type != "text" {
		return
	}

	n.log.WithField("from", msg.From).Info("received message")

	reply := n.responder.Respond(msg.Body())

	// A failed send does not cancel the translation follow-up; each send
	// is its own best effort.
	ctx := context.Background()
	if err := n.sender.SendText(ctx, msg.From, reply.Text); err != nil {
		n.log.WithError(err).WithField("to", msg.From).Error("failed to send reply")
	}

	if reply.Translation != "" {
		time.Sleep(n.TranslationDelay)
		if err := n.sender.SendText(ctx, msg.From, "📝 Translation: "+reply.Translation); err != nil {
			n.log.WithError(err).WithField("to", msg.From).Error("failed to send translation")
		}
	}
}
