package rest

import "github.com/gofiber/fiber/v2"

func (s *HTTPServer) listTemplates(c *fiber.Ctx) error {
	items, err := s.templates.List(c.UserContext())
	if err != nil {
		return err
	}
	if items == nil {
		return c.JSON([]any{})
	}
	return c.JSON(items)
}

func (s *HTTPServer) getTemplate(c *fiber.Ctx) error {
	t, err := s.templates.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(t)
}
