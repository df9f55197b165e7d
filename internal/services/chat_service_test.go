package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skuchat/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_ForwardsAndAppendsTranscript(t *testing.T) {
	var gotMessage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotMessage = body.Message
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "Found 3 bikinis"})
	}))
	defer srv.Close()

	svc := services.NewChatService(srv.URL, srv.Client())
	reply := svc.SendQuery(context.Background(), "sess-1", "show me bikinis")

	assert.Equal(t, "show me bikinis", gotMessage)
	assert.Equal(t, "Found 3 bikinis", reply)

	msgs := svc.Transcript("sess-1")
	require.Len(t, msgs, 3) // welcome + user + system
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "user", msgs[1].Role)
	assert.Equal(t, "show me bikinis", msgs[1].Content)
	assert.Equal(t, "Found 3 bikinis", msgs[2].Content)
}

func TestChat_MissingResponseFieldFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := services.NewChatService(srv.URL, srv.Client())
	reply := svc.SendQuery(context.Background(), "sess-1", "anything")
	assert.Equal(t, "Sorry, I couldn't process your request.", reply)
}

func TestChat_BackendDownStillReplies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := services.NewChatService(srv.URL, srv.Client())

	// Enough consecutive failures to open the breaker; every turn still
	// gets an apology reply, open breaker included.
	for i := 0; i < 5; i++ {
		reply := svc.SendQuery(context.Background(), "sess-1", "hello")
		assert.Equal(t, "Sorry, there was an error processing your request.", reply)
	}

	msgs := svc.Transcript("sess-1")
	assert.Len(t, msgs, 11) // welcome + 5 exchanges
}

func TestChat_TranscriptsAreSessionScoped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer srv.Close()

	svc := services.NewChatService(srv.URL, srv.Client())
	_ = svc.SendQuery(context.Background(), "sess-1", "first")

	assert.Len(t, svc.Transcript("sess-1"), 3)
	assert.Len(t, svc.Transcript("sess-2"), 1) // just the welcome
}
