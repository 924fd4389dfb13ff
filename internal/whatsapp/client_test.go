package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSendText(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.x"}]}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-token", "12345", srv.URL, testLogger())
	if err := c.SendText(context.Background(), "250700000000", "Muraho!"); err != nil {
		t.Fatalf("SendText: %v", err)
	}

	if gotPath != "/12345/messages" {
		t.Errorf("path = %q, want /12345/messages", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotBody["messaging_product"] != "whatsapp" || gotBody["to"] != "250700000000" || gotBody["type"] != "text" {
		t.Errorf("unexpected body %v", gotBody)
	}
	text, _ := gotBody["text"].(map[string]any)
	if text["body"] != "Muraho!" {
		t.Errorf("text body = %v", text)
	}
}

func TestSendTextNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad token"}}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("bad", "12345", srv.URL, testLogger())
	if err := c.SendText(context.Background(), "250700000000", "hi"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
