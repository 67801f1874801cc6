package youth

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		profiles, err := svc.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if c.Query("plottable") == "true" {
			profiles = Plottable(profiles)
		}
		if profiles == nil {
			profiles = []Profile{}
		}
		return c.JSON(profiles)
	})
}
