package handlers

import (
	"carehub/app"
	"carehub/pkg/trivia"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetWeather returns the forecast for ?lat=&lon=, falling back to the configured location
func GetWeather(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon := a.Weather.Defaults()

		if raw := c.Query("lat"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return badRequest(c, "Invalid lat parameter")
			}
			lat = v
		}
		if raw := c.Query("lon"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return badRequest(c, "Invalid lon parameter")
			}
			lon = v
		}

		forecast, err := a.Weather.Forecast(c.UserContext(), lat, lon)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch weather")
		}
		return success(c, fiber.Map{"weather": forecast})
	}
}

// GetTrivia returns questions for ?amount=&category=&difficulty=
func GetTrivia(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := trivia.Query{Difficulty: c.Query("difficulty")}

		if raw := c.Query("amount"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return badRequest(c, "Invalid amount parameter")
			}
			q.Amount = v
		}
		if raw := c.Query("category"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return badRequest(c, "Invalid category parameter")
			}
			q.Category = v
		}

		questions, err := a.Trivia.Questions(c.UserContext(), q)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch trivia")
		}
		return success(c, fiber.Map{"questions": questions})
	}
}
