package handlers

import (
	"carehub/app"
	"carehub/middleware"
	"carehub/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotes lists the caller's notes, newest first; ?q= searches title and content
func GetNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.List(c.UserContext(), middleware.GetUserID(c), c.Query("q"))
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch notes")
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		note, err := a.Notes.Get(c.UserContext(), middleware.GetUserID(c), noteID)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch note")
		}
		return success(c, fiber.Map{"note": note})
	}
}

func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NoteRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		note, err := a.Notes.Create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return handleServiceError(c, err, "Failed to create note")
		}
		return created(c, fiber.Map{"note": note})
	}
}

func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		var req models.NoteRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		note, err := a.Notes.Update(c.UserContext(), middleware.GetUserID(c), noteID, req)
		if err != nil {
			return handleServiceError(c, err, "Failed to update note")
		}
		return success(c, fiber.Map{"note": note})
	}
}

func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		if err := a.Notes.Delete(c.UserContext(), middleware.GetUserID(c), noteID); err != nil {
			return handleServiceError(c, err, "Failed to delete note")
		}
		return success(c, fiber.Map{"message": "Note deleted"})
	}
}
