package storage

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/upload", authMiddleware, func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "file field required")
		}
		up, err := svc.Store(c.Context(), file)
		if err != nil {
			if errors.Is(err, ErrNotImage) {
				return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(up)
	})
}
