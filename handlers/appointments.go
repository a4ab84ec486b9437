package handlers

import (
	"carehub/app"
	"carehub/middleware"
	"carehub/models"

	"github.com/gofiber/fiber/v2"
)

// GetAppointments lists the caller's appointments.
// Accepts ?date=YYYY-MM-DD or an inclusive ?from=&to= range.
func GetAppointments(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := models.AppointmentFilter{
			Date: c.Query("date"),
			From: c.Query("from"),
			To:   c.Query("to"),
		}

		appts, err := a.Appointments.List(c.UserContext(), middleware.GetUserID(c), filter)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch appointments")
		}
		return success(c, fiber.Map{"appointments": appts})
	}
}

// GetAppointmentsOnDate serves /med-appointments/date/:date with a compact YYYYMMDD date
func GetAppointmentsOnDate(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		appts, err := a.Appointments.ListOnDate(c.UserContext(), middleware.GetUserID(c), c.Params("date"))
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch appointments")
		}
		return success(c, fiber.Map{"appointments": appts})
	}
}

func GetAppointment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apptID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid appointment id")
		}

		appt, err := a.Appointments.Get(c.UserContext(), middleware.GetUserID(c), apptID)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch appointment")
		}
		return success(c, fiber.Map{"appointment": appt})
	}
}

func CreateAppointment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.MedAppointmentRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		appt, err := a.Appointments.Create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return handleServiceError(c, err, "Failed to create appointment")
		}
		return created(c, fiber.Map{"appointment": appt})
	}
}

func UpdateAppointment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apptID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid appointment id")
		}

		var req models.MedAppointmentRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		appt, err := a.Appointments.Update(c.UserContext(), middleware.GetUserID(c), apptID, req)
		if err != nil {
			return handleServiceError(c, err, "Failed to update appointment")
		}
		return success(c, fiber.Map{"appointment": appt})
	}
}

func DeleteAppointment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apptID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid appointment id")
		}

		if err := a.Appointments.Delete(c.UserContext(), middleware.GetUserID(c), apptID); err != nil {
			return handleServiceError(c, err, "Failed to delete appointment")
		}
		return success(c, fiber.Map{"message": "Appointment deleted"})
	}
}
