package handlers

import (
	"carehub/app"
	"carehub/services"
	"carehub/validator"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": message})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func badGateway(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": message})
}

func validationFailed(c *fiber.Ctx, details validator.ValidationErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": details,
	})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// bind parses the JSON body into out and validates it. When ok is false the
// error response has already been written and err is the result of writing it.
func bind(c *fiber.Ctx, a *app.App, out interface{}) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, badRequest(c, "Invalid request body")
	}

	if err := a.Validator.Validate(out); err != nil {
		var details validator.ValidationErrors
		if errors.As(err, &details) {
			return false, validationFailed(c, details)
		}
		return false, badRequest(c, err.Error())
	}

	return true, nil
}

// paramID reads a positive numeric route parameter
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors onto HTTP responses.
// Anything unrecognised is logged and reported as fallback with a 500.
func handleServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return badRequest(c, strings.TrimPrefix(err.Error(), services.ErrInvalidInput.Error()+": "))
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrInvalidUserInfo):
		return unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return forbidden(c, "You do not have access to this resource")
	case errors.Is(err, services.ErrAccountSuspended):
		return forbidden(c, err.Error())
	case services.IsNotFound(err):
		return notFound(c, err.Error())
	case services.IsConflict(err):
		return conflict(c, err.Error())
	case errors.Is(err, services.ErrUpstream):
		slog.Warn("upstream request failed", "path", c.Path(), "error", err)
		return badGateway(c, services.ErrUpstream.Error())
	default:
		return serverErrorWithDetails(c, fallback, err)
	}
}
