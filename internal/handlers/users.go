package handlers

import (
	"errors"

	"photo-backend/internal/models"
	"photo-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RegisterHandler creates a new account. Duplicate username and duplicate
// email are distinct 401 responses, with the username conflict reported first
// when both collide.
func RegisterHandler(users *services.UserService, audit *services.AuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseBody(c)
		if err != nil {
			return badRequest(c, err)
		}

		fields, err := requireStrings(body, "username", "email", "password")
		if err != nil {
			return badRequest(c, err)
		}

		userID, err := users.Register(c.Context(), fields["username"], fields["email"], fields["password"])
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameExists):
				return c.Status(fiber.StatusUnauthorized).JSON(msg("Auth register existing login"))
			case errors.Is(err, services.ErrEmailExists):
				return c.Status(fiber.StatusUnauthorized).JSON(msg("Auth register existing email"))
			default:
				return c.Status(fiber.StatusBadRequest).JSON(msg("Error, try later"))
			}
		}

		audit.Record(userID, "register", "user "+fields["username"]+" registered")
		return c.JSON(msg("Registration successful"))
	}
}

// LoginHandler checks credentials and issues a bearer token. Unknown username
// and wrong password produce the identical response.
func LoginHandler(users *services.UserService, tokens *services.TokenIssuer, audit *services.AuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseBody(c)
		if err != nil {
			return badRequest(c, err)
		}

		fields, err := requireStrings(body, "username", "password")
		if err != nil {
			return badRequest(c, err)
		}

		user, err := users.Login(c.Context(), fields["username"], fields["password"])
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.Status(fiber.StatusUnauthorized).JSON(msg("Auth incorrect login or password"))
			}
			return c.Status(fiber.StatusBadRequest).JSON(msg("Error, try later"))
		}

		token, err := tokens.Issue(user.ID, user.Username)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(msg("Error, try later"))
		}

		audit.Record(user.ID, "login", "user "+user.Username+" logged in")
		return c.JSON(models.AuthResponse{
			Msg:         "Authorization successful",
			AccessToken: token,
			UserID:      user.ID,
			Username:    user.Username,
		})
	}
}

// EditEmailHandler updates the authenticated user's email.
func EditEmailHandler(users *services.UserService, audit *services.AuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		body, err := parseBody(c)
		if err != nil {
			return badRequest(c, err)
		}

		fields, err := requireStrings(body, "email")
		if err != nil {
			return badRequest(c, err)
		}

		if err := users.UpdateEmail(c.Context(), userID, fields["email"]); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(msg("User not found"))
			}
			return c.Status(fiber.StatusBadRequest).JSON(msg("Update not successful"))
		}

		audit.Record(userID, "email_update", "email changed")
		return c.JSON(msg("Update successful"))
	}
}

// DeleteUserHandler removes the authenticated user and, through the cascade,
// every photo and activity row they own.
func DeleteUserHandler(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		if err := users.DeleteUser(c.Context(), userID); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(msg("User not found"))
			}
			return c.Status(fiber.StatusBadRequest).JSON(msg("Delete not successful"))
		}

		return c.JSON(msg("Delete successful"))
	}
}
