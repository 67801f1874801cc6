package route

import (
	"github.com/russelescultura/sk-barangay-sub000/internal/location"

	"github.com/gofiber/fiber/v2"
)

type planRequest struct {
	SessionID     string `json:"session_id"`
	Start         Point  `json:"start"`
	DestinationID string `json:"destination_id"`
	End           *Point `json:"end"`
}

func RegisterRoutes(r fiber.Router, dispatcher *Dispatcher, locations *location.Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req planRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.SessionID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "session_id required")
		}

		end := req.End
		if end == nil {
			if req.DestinationID == "" {
				return fiber.NewError(fiber.StatusBadRequest, "destination_id or end required")
			}
			loc, err := locations.Get(c.Context(), req.DestinationID)
			if err != nil {
				return fiber.NewError(fiber.StatusNotFound, "destination not found")
			}
			end = &Point{Lat: loc.Lat, Lng: loc.Lng}
		}

		result := dispatcher.Request(c.Context(), req.SessionID, req.Start, *end)
		return c.JSON(result)
	})

	r.Get("/:sessionID", func(c *fiber.Ctx) error {
		result, ok := dispatcher.Latest(c.Params("sessionID"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no route for session")
		}
		return c.JSON(result)
	})

	r.Delete("/:sessionID", func(c *fiber.Ctx) error {
		dispatcher.Clear(c.Params("sessionID"))
		return c.SendStatus(fiber.StatusNoContent)
	})
}
