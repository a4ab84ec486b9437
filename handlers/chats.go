package handlers

import (
	"carehub/app"
	"carehub/middleware"
	"carehub/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetChats lists the chats visible to the caller, optionally filtered with ?status=
func GetChats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, _ := middleware.GetPrincipal(c)
		chats, err := a.Chats.List(c.UserContext(), caller, models.ChatStatus(c.Query("status")))
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch chats")
		}
		return success(c, fiber.Map{"chats": chats})
	}
}

func GetChat(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chatID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid chat id")
		}

		caller, _ := middleware.GetPrincipal(c)
		chat, err := a.Chats.Get(c.UserContext(), caller, chatID)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch chat")
		}
		return success(c, fiber.Map{"chat": chat})
	}
}

func CreateChat(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateChatRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		caller, _ := middleware.GetPrincipal(c)
		chat, err := a.Chats.Create(c.UserContext(), caller, req)
		if err != nil {
			return handleServiceError(c, err, "Failed to create chat")
		}
		return created(c, fiber.Map{"chat": chat})
	}
}

// AcceptChat assigns an open chat to the calling volunteer
func AcceptChat(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chatID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid chat id")
		}

		caller, _ := middleware.GetPrincipal(c)
		chat, err := a.Chats.Accept(c.UserContext(), caller, chatID)
		if err != nil {
			return handleServiceError(c, err, "Failed to accept chat")
		}
		return success(c, fiber.Map{"chat": chat})
	}
}

func CloseChat(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chatID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid chat id")
		}

		caller, _ := middleware.GetPrincipal(c)
		chat, err := a.Chats.Close(c.UserContext(), caller, chatID)
		if err != nil {
			return handleServiceError(c, err, "Failed to close chat")
		}
		return success(c, fiber.Map{"chat": chat})
	}
}

func DeleteChat(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chatID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid chat id")
		}

		if err := a.Chats.Delete(c.UserContext(), chatID); err != nil {
			return handleServiceError(c, err, "Failed to delete chat")
		}
		return success(c, fiber.Map{"message": "Chat deleted"})
	}
}

// GetChatMessages returns messages in send order. ?after= skips everything up
// to and including that message id so clients can poll for new ones.
func GetChatMessages(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chatID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid chat id")
		}

		var afterID int64
		if after := c.Query("after"); after != "" {
			parsed, err := strconv.ParseInt(after, 10, 64)
			if err != nil {
				return badRequest(c, "Invalid after parameter")
			}
			afterID = parsed
		}

		caller, _ := middleware.GetPrincipal(c)
		messages, err := a.Chats.Messages(c.UserContext(), caller, chatID, afterID)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch messages")
		}
		return success(c, fiber.Map{"messages": messages})
	}
}

func SendChatMessage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chatID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid chat id")
		}

		var req models.ChatMessageRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		caller, _ := middleware.GetPrincipal(c)
		msg, err := a.Chats.Send(c.UserContext(), caller, chatID, req)
		if err != nil {
			return handleServiceError(c, err, "Failed to send message")
		}
		return created(c, fiber.Map{"message": msg})
	}
}
