package handlers

import (
	"carehub/app"
	"carehub/middleware"
	"carehub/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeedbacks returns every feedback for admins and the caller's own otherwise
func GetFeedbacks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, _ := middleware.GetPrincipal(c)
		feedbacks, err := a.Feedbacks.List(c.UserContext(), caller, models.FeedbackStatus(c.Query("status")))
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch feedback")
		}
		return success(c, fiber.Map{"feedbacks": feedbacks})
	}
}

func GetFeedback(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		feedbackID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid feedback id")
		}

		caller, _ := middleware.GetPrincipal(c)
		feedback, err := a.Feedbacks.Get(c.UserContext(), caller, feedbackID)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch feedback")
		}
		return success(c, fiber.Map{"feedback": feedback})
	}
}

func CreateFeedback(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.FeedbackRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		caller, _ := middleware.GetPrincipal(c)
		feedback, err := a.Feedbacks.Create(c.UserContext(), caller, req)
		if err != nil {
			return handleServiceError(c, err, "Failed to submit feedback")
		}
		return created(c, fiber.Map{"feedback": feedback})
	}
}

func UpdateFeedbackStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		feedbackID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid feedback id")
		}

		var req models.UpdateFeedbackStatusRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		caller, _ := middleware.GetPrincipal(c)
		feedback, err := a.Feedbacks.UpdateStatus(c.UserContext(), caller, feedbackID, req.Status)
		if err != nil {
			return handleServiceError(c, err, "Failed to update feedback")
		}
		return success(c, fiber.Map{"feedback": feedback})
	}
}

func DeleteFeedback(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		feedbackID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid feedback id")
		}

		caller, _ := middleware.GetPrincipal(c)
		if err := a.Feedbacks.Delete(c.UserContext(), caller, feedbackID); err != nil {
			return handleServiceError(c, err, "Failed to delete feedback")
		}
		return success(c, fiber.Map{"message": "Feedback deleted"})
	}
}
