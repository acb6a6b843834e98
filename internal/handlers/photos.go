package handlers

import (
	"photo-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AddPhotoHandler stores a new photo for the authenticated user. The payload
// is an opaque string; description is optional but must be a string if given.
func AddPhotoHandler(photos *services.PhotoService, audit *services.AuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		body, err := parseBody(c)
		if err != nil {
			return badRequest(c, err)
		}

		fields, err := requireStrings(body, "photo")
		if err != nil {
			return badRequest(c, err)
		}
		description, err := optionalString(body, "description")
		if err != nil {
			return badRequest(c, err)
		}

		photoID, err := photos.AddPhoto(c.Context(), userID, fields["photo"], description)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(msg("Error, try later"))
		}

		audit.Record(userID, "photo_add", "photo "+photoID+" added")
		return c.JSON(fiber.Map{
			"msg":      "Photo added successfully",
			"photo_id": photoID,
		})
	}
}

// DeletePhotoHandler deletes one of the authenticated user's photos by id.
// Photos owned by someone else answer 404, same as photos that never existed.
func DeletePhotoHandler(photos *services.PhotoService, audit *services.AuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		photoID := c.Params("photo_id")

		// The id column is a native uuid; a malformed id can never match a
		// row and must not reach the database as a failed cast.
		if _, err := uuid.Parse(photoID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(msg("Photo not found"))
		}

		photo, err := photos.GetPhotoByID(c.Context(), photoID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(msg("Delete not successful"))
		}
		if photo == nil || photo.UserID != userID {
			return c.Status(fiber.StatusNotFound).JSON(msg("Photo not found"))
		}

		if !photos.DeletePhoto(c.Context(), photo) {
			return c.Status(fiber.StatusBadRequest).JSON(msg("Delete not successful"))
		}

		audit.Record(userID, "photo_delete", "photo "+photoID+" deleted")
		return c.JSON(msg("Delete successful"))
	}
}
