package support

import (
	"encoding/json"
	"io"
	"mysteriogame/services"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestSubmitSupportRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	received := make(chan string, 1)
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		json.Unmarshal(body, &payload)
		received <- payload["content"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer webhook.Close()

	router := gin.New()
	SupportController(router, services.NewNotifier(webhook.URL, zap.NewNop()))

	t.Run("valid request relays to webhook", func(t *testing.T) {
		body := `{"category":"Bug","heading":"Broken task","problem":"The code never matches","contact":"@someone"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/support", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		select {
		case content := <-received:
			for _, want := range []string{"Support Request Received", "Bug", "Broken task", "@someone"} {
				if !strings.Contains(content, want) {
					t.Errorf("webhook message missing %q", want)
				}
			}
		case <-time.After(2 * time.Second):
			t.Fatal("webhook was never called")
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		body := `{"category":"Bug"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/support", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
