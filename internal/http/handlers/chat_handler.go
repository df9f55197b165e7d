package handlers

import (
	"strings"

	applog "skuchat/internal/log"
	"skuchat/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	Chat *services.ChatService
}

type chatPayload struct {
	Message string `json:"message"`
}

// Send is the JSON endpoint behind the chat widget: {message} in,
// {response} out. A backend fault still produces a reply, so the widget
// never breaks.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var p chatPayload
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	msg := strings.TrimSpace(p.Message)
	if msg == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}
	if len(msg) > 500 {
		msg = msg[:500]
	}

	reply := h.Chat.SendQuery(c.UserContext(), sid, msg)
	applog.Info(c, "chat.query", map[string]any{"len": len(msg)})
	return c.JSON(fiber.Map{"response": reply})
}

// View renders the transcript page.
func (h *ChatHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return render(c, "chat", fiber.Map{"Messages": h.Chat.Transcript(sid)})
}
