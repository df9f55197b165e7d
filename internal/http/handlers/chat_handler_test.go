package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skuchat/internal/services"

	"github.com/gofiber/fiber/v2"
)

func chatApp(t *testing.T, backend http.Handler) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	app := fiber.New()
	h := &ChatHandler{Chat: services.NewChatService(srv.URL, srv.Client())}
	app.Post("/api/chat", h.Send)
	return app
}

func TestChatSend(t *testing.T) {
	app := chatApp(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "Found it"})
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"find SKU DB341-ZEB-0"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var body struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Response != "Found it" {
		t.Fatalf("got %q", body.Response)
	}
}

func TestChatSend_EmptyMessageRejected(t *testing.T) {
	app := chatApp(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("backend must not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}
