package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"skuchat/internal/domain"

	"github.com/sony/gobreaker/v2"
)

const (
	chatWelcome = "Welcome to our product database chat! You can ask questions like:\n" +
		"- Find SKU DB341-ZEB-0\n- Show accessories under $10\n- Show me bikinis"
	chatFallback    = "Sorry, I couldn't process your request."
	chatUnavailable = "Sorry, there was an error processing your request."
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// ChatService forwards free-text product queries to the backend search
// endpoint and keeps a per-session transcript. It shares no state with
// the cart. The outbound call runs behind a circuit breaker; when the
// collaborator is down the user still gets an apology reply.
type ChatService struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[string]

	mu          sync.Mutex
	transcripts map[string][]domain.ChatMessage
}

func NewChatService(url string, client *http.Client) *ChatService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:    "chat-bridge",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &ChatService{
		url:         url,
		client:      client,
		breaker:     cb,
		transcripts: map[string][]domain.ChatMessage{},
	}
}

// SendQuery does one request/response exchange and appends both sides
// to the transcript. Failures never propagate; the reply degrades to an
// apology string. Replies append in completion order: a slow earlier
// request finishing after a later one lands out of order, which is an
// accepted limitation of this widget.
func (s *ChatService) SendQuery(ctx context.Context, sessionID, text string) string {
	s.append(sessionID, domain.ChatMessage{Role: "user", Content: text})

	reply, err := s.breaker.Execute(func() (string, error) {
		return s.forward(ctx, text)
	})
	if err != nil {
		reply = chatUnavailable
	}

	s.append(sessionID, domain.ChatMessage{Role: "system", Content: reply})
	return reply
}

func (s *ChatService) forward(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(chatRequest{Message: text})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat backend returned %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return "", err
	}
	if out.Response == "" {
		// Well-formed reply with no answer: apologize but count the
		// exchange as successful for the breaker.
		return chatFallback, nil
	}
	return out.Response, nil
}

// Transcript returns the session's chat history, seeded with the
// welcome message.
func (s *ChatService) Transcript(sessionID string) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs, ok := s.transcripts[sessionID]
	if !ok {
		msgs = []domain.ChatMessage{{Role: "system", Content: chatWelcome}}
		s.transcripts[sessionID] = msgs
	}
	out := make([]domain.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

func (s *ChatService) append(sessionID string, m domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transcripts[sessionID]; !ok {
		s.transcripts[sessionID] = []domain.ChatMessage{{Role: "system", Content: chatWelcome}}
	}
	s.transcripts[sessionID] = append(s.transcripts[sessionID], m)
}
