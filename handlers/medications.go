package handlers

import (
	"carehub/app"
	"carehub/middleware"
	"carehub/models"

	"github.com/gofiber/fiber/v2"
)

func GetMedications(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		meds, err := a.Medications.List(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch medications")
		}
		return success(c, fiber.Map{"medications": meds})
	}
}

func GetMedication(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		medID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid medication id")
		}

		med, err := a.Medications.Get(c.UserContext(), middleware.GetUserID(c), medID)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch medication")
		}
		return success(c, fiber.Map{"medication": med})
	}
}

func CreateMedication(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.MedicationRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		med, err := a.Medications.Create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return handleServiceError(c, err, "Failed to create medication")
		}
		return created(c, fiber.Map{"medication": med})
	}
}

func UpdateMedication(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		medID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid medication id")
		}

		var req models.MedicationRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		med, err := a.Medications.Update(c.UserContext(), middleware.GetUserID(c), medID, req)
		if err != nil {
			return handleServiceError(c, err, "Failed to update medication")
		}
		return success(c, fiber.Map{"medication": med})
	}
}

func DeleteMedication(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		medID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid medication id")
		}

		if err := a.Medications.Delete(c.UserContext(), middleware.GetUserID(c), medID); err != nil {
			return handleServiceError(c, err, "Failed to delete medication")
		}
		return success(c, fiber.Map{"message": "Medication deleted"})
	}
}
