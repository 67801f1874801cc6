package location

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		locations, degraded := svc.List(c.Context())
		if degraded {
			c.Set("X-Seed-Fallback", "1")
		}
		if locations == nil {
			locations = []Location{}
		}
		return c.JSON(locations)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		loc, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "location not found")
		}
		return c.JSON(loc)
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req CreateInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		created, problems, err := svc.Create(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if len(problems) > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": problems})
		}

		// no local merge: respond with the reloaded list alongside the row
		locations, _ := svc.List(c.Context())
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"location":  created,
			"locations": locations,
		})
	})

	r.Patch("/:id/position", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Lat float64 `json:"latitude"`
			Lng float64 `json:"longitude"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := svc.Reposition(c.Context(), c.Params("id"), body.Lat, body.Lng); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		if c.Query("confirm") != "true" {
			return fiber.NewError(fiber.StatusPreconditionRequired, "delete requires confirm=true")
		}
		if err := svc.Remove(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
