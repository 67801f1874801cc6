package tracker

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, t *Tracker) {
	// watch stops are owned per session so the stop function returned by
	// StartWatch is invoked exactly once, on stop or session close
	var mu sync.Mutex
	stops := map[string]func(){}

	r.Post("/:id/begin-locate", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"options": t.BeginLocate(c.Params("id"))})
	})

	r.Post("/:id/fix", func(c *fiber.Ctx) error {
		var body struct {
			Lat      float64 `json:"lat"`
			Lng      float64 `json:"lng"`
			Accuracy float64 `json:"accuracy"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(t.ReportFix(c.Params("id"), body.Lat, body.Lng, body.Accuracy))
	})

	r.Post("/:id/error", func(c *fiber.Ctx) error {
		var body struct {
			Code int `json:"code"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{"message": t.ReportError(c.Params("id"), body.Code)})
	})

	r.Post("/:id/begin-select", func(c *fiber.Ctx) error {
		t.BeginSelect(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/:id/click", func(c *fiber.Ctx) error {
		var body struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		fix, accepted := t.Click(c.Params("id"), body.Lat, body.Lng)
		return c.JSON(fiber.Map{"fix": fix, "accepted": accepted})
	})

	r.Post("/:id/cancel-select", func(c *fiber.Ctx) error {
		t.CancelSelect(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		state, fix, message := t.Current(c.Params("id"))
		return c.JSON(fiber.Map{"state": state, "fix": fix, "message": message})
	})

	r.Post("/:id/watch/start", func(c *fiber.Ctx) error {
		id := c.Params("id")
		mu.Lock()
		defer mu.Unlock()
		if _, running := stops[id]; !running {
			stops[id] = t.StartWatch(id)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/:id/watch/stop", func(c *fiber.Ctx) error {
		id := c.Params("id")
		mu.Lock()
		stop, ok := stops[id]
		delete(stops, id)
		mu.Unlock()
		if ok {
			stop()
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")
		mu.Lock()
		stop, ok := stops[id]
		delete(stops, id)
		mu.Unlock()
		if ok {
			stop()
		}
		t.Close(id)
		return c.SendStatus(fiber.StatusNoContent)
	})
}
