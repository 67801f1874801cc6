package mapview

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, m *Manager, authMiddleware fiber.Handler) {
	session := func(c *fiber.Ctx) (*Session, error) {
		s, err := m.Get(c.Params("id"))
		if err != nil {
			return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return s, nil
	}

	r.Post("/sessions", func(c *fiber.Ctx) error {
		s := m.Create()
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":       s.ID,
			"viewport": s.Viewport(),
		})
	})

	r.Delete("/sessions/:id", func(c *fiber.Ctx) error {
		m.Close(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Get("/sessions/:id/markers", func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		return c.JSON(m.Markers(c.Context(), s))
	})

	r.Put("/sessions/:id/edit-mode", authMiddleware, func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		var body struct {
			Enabled bool `json:"enabled"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		s.SetEditMode(body.Enabled)
		return c.JSON(fiber.Map{"edit_mode": s.EditMode()})
	})

	r.Put("/sessions/:id/viewport", func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		var body struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(s.SetViewportSize(body.Width, body.Height))
	})

	r.Post("/sessions/:id/center", func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		var body struct {
			Lat  float64 `json:"lat"`
			Lng  float64 `json:"lng"`
			Zoom float64 `json:"zoom"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(s.CenterOn(body.Lat, body.Lng, body.Zoom))
	})

	r.Post("/sessions/:id/fit-bounds", func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		var body struct {
			MinLat float64 `json:"min_lat"`
			MinLng float64 `json:"min_lng"`
			MaxLat float64 `json:"max_lat"`
			MaxLng float64 `json:"max_lng"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(s.FitBounds(body.MinLat, body.MinLng, body.MaxLat, body.MaxLng))
	})

	r.Post("/sessions/:id/drag/start", authMiddleware, func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		var body struct {
			LocationID string `json:"location_id"`
		}
		if err := c.BodyParser(&body); err != nil || body.LocationID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "location_id required")
		}
		zone, err := s.StartDrag(body.LocationID)
		if err != nil {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return c.JSON(fiber.Map{"trash_zone": zone})
	})

	r.Post("/sessions/:id/drag/end", authMiddleware, func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		var body struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		result, err := m.EndDrag(c.Context(), s, body.Lat, body.Lng)
		if err != nil {
			if errors.Is(err, ErrNoActiveDrag) {
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(result)
	})

	r.Post("/sessions/:id/delete/confirm", authMiddleware, func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		if err := m.ConfirmDelete(c.Context(), s); err != nil {
			if errors.Is(err, ErrNoPendingDelete) {
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/sessions/:id/delete/cancel", authMiddleware, func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		s.CancelDelete()
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/sessions/:id/popup/clamp", func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		var box Box
		if err := c.BodyParser(&box); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		dx, dy := ClampPopup(box, s.Viewport())
		return c.JSON(fiber.Map{"dx": dx, "dy": dy})
	})

	r.Post("/sessions/:id/flow/right-click", authMiddleware, func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		var body struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		s.RightClick(body.Lat, body.Lng)
		return c.JSON(fiber.Map{"flow": s.Flow()})
	})

	r.Post("/sessions/:id/flow/open-form", authMiddleware, func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		if err := s.OpenForm(); err != nil {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return c.JSON(fiber.Map{"flow": s.Flow()})
	})

	r.Post("/sessions/:id/flow/submit", authMiddleware, func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		var input FormInput
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		created, problems, err := m.SubmitForm(c.Context(), s, input)
		if errors.Is(err, ErrFlowState) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if len(problems) > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"flow":   s.Flow(),
				"errors": problems,
			})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"flow":     s.Flow(),
			"location": created,
		})
	})

	r.Post("/sessions/:id/flow/cancel", authMiddleware, func(c *fiber.Ctx) error {
		s, err := session(c)
		if err != nil {
			return err
		}
		s.CancelForm()
		return c.JSON(fiber.Map{"flow": s.Flow()})
	})
}
