package handlers

import (
	"carehub/app"
	"carehub/middleware"
	"carehub/models"

	"github.com/gofiber/fiber/v2"
)

// Me returns the caller's profile
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.Users.Get(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch profile")
		}
		return success(c, fiber.Map{"user": user})
	}
}

func UpdateMe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateProfileRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		user, err := a.Users.UpdateProfile(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return handleServiceError(c, err, "Failed to update profile")
		}
		return success(c, fiber.Map{"user": user})
	}
}

func ChangePassword(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ChangePasswordRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		if err := a.Users.ChangePassword(c.UserContext(), middleware.GetUserID(c), req); err != nil {
			return handleServiceError(c, err, "Failed to change password")
		}
		return success(c, fiber.Map{"message": "Password updated"})
	}
}

// ListUsers returns all accounts, optionally filtered with ?role=
func ListUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := a.Users.List(c.UserContext(), models.Role(c.Query("role")))
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch users")
		}
		return success(c, fiber.Map{"users": users})
	}
}

func CreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUserRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		user, err := a.Users.Create(c.UserContext(), req)
		if err != nil {
			return handleServiceError(c, err, "Failed to create user")
		}
		return created(c, fiber.Map{"user": user})
	}
}

func UpdateUserStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid user id")
		}

		var req models.UpdateUserStatusRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		caller, _ := middleware.GetPrincipal(c)
		user, err := a.Users.SetStatus(c.UserContext(), caller, userID, req.Status)
		if err != nil {
			return handleServiceError(c, err, "Failed to update user status")
		}
		return success(c, fiber.Map{"user": user})
	}
}

func UpdateUserRole(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid user id")
		}

		var req models.UpdateUserRoleRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		caller, _ := middleware.GetPrincipal(c)
		user, err := a.Users.SetRole(c.UserContext(), caller, userID, req.Role)
		if err != nil {
			return handleServiceError(c, err, "Failed to update user role")
		}
		return success(c, fiber.Map{"user": user})
	}
}

func DeleteUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid user id")
		}

		caller, _ := middleware.GetPrincipal(c)
		if err := a.Users.Delete(c.UserContext(), caller, userID); err != nil {
			return handleServiceError(c, err, "Failed to delete user")
		}
		return success(c, fiber.Map{"message": "User deleted"})
	}
}
