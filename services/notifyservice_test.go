package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNotifier_Send(t *testing.T) {
	received := make(chan map[string]string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %s", ct)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("invalid payload: %v", err)
		}
		received <- payload
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL, zap.NewNop())
	n.Send("hello from the game")

	select {
	case payload := <-received:
		if payload["content"] != "hello from the game" {
			t.Errorf("content = %q", payload["content"])
		}
	case <-time.After(time.Second):
		t.Fatal("webhook was never called")
	}
}

func TestNotifier_DisabledWithoutURL(t *testing.T) {
	n := NewNotifier("", zap.NewNop())
	// must be a no-op, not a panic or a network call
	n.Send("dropped")
}

func TestNotifier_FailureDoesNotPropagate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL, zap.NewNop())
	n.Send("still fine") // failure is logged, nothing to assert beyond no panic
}

func TestMessageBuilders(t *testing.T) {
	now := time.Date(2025, 4, 12, 18, 30, 0, 0, time.UTC)

	t.Run("account created", func(t *testing.T) {
		msg := AccountCreatedMessage("new@example.com", "Email/Password", now)
		for _, want := range []string{"New Account Created", "new@example.com", "Email/Password", "4/12/2025", "6:30 PM"} {
			if !strings.Contains(msg, want) {
				t.Errorf("message missing %q:\n%s", want, msg)
			}
		}
	})

	t.Run("task completed", func(t *testing.T) {
		msg := TaskCompletedMessage("Find the drop point", "Player_One", now)
		for _, want := range []string{"Task Completed", "Find the drop point", "Player_One"} {
			if !strings.Contains(msg, want) {
				t.Errorf("message missing %q", want)
			}
		}
	})

	t.Run("approval submitted", func(t *testing.T) {
		msg := ApprovalSubmittedMessage("Photo proof", "Player_One", now)
		for _, want := range []string{"Approval Submitted", "Photo proof", "Player_One"} {
			if !strings.Contains(msg, want) {
				t.Errorf("message missing %q", want)
			}
		}
	})

	t.Run("support request", func(t *testing.T) {
		msg := SupportRequestMessage("Bug", "Broken task", "The code never matches", "@someone", now)
		for _, want := range []string{"Support Request Received", "Bug", "Broken task", "The code never matches", "@someone"} {
			if !strings.Contains(msg, want) {
				t.Errorf("message missing %q", want)
			}
		}
	})
}
