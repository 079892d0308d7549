package rest

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/dmitrijs2005/runaudit/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

func (s *HTTPServer) uploadRun(c *fiber.Ctx) error {
	templateID := c.FormValue("template_id")
	fh, err := c.FormFile("file")
	if err != nil || templateID == "" {
		return common.WithDetail(common.ErrValidation, "Both file and template_id are required")
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("error opening upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("error reading upload: %w", err)
	}

	run, err := s.runs.Upload(c.UserContext(), currentUser(c).ID, services.Upload{
		TemplateID: templateID,
		FileName:   fh.Filename,
		Content:    content,
	})
	if err != nil {
		return err
	}

	s.logger.Info(c.UserContext(), "run stored", "run_id", run.ID, "status", run.Status)
	return c.Status(fiber.StatusCreated).JSON(run)
}

func (s *HTTPServer) listRuns(c *fiber.Ctx) error {
	items, err := s.runs.List(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return err
	}
	if items == nil {
		return c.JSON([]any{})
	}
	return c.JSON(items)
}

func (s *HTTPServer) runStats(c *fiber.Ctx) error {
	stats, err := s.runs.Stats(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (s *HTTPServer) getRun(c *fiber.Ctx) error {
	run, err := s.runs.Get(c.UserContext(), currentUser(c).ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(run)
}

func (s *HTTPServer) downloadRun(c *fiber.Ctx) error {
	url, err := s.runs.DownloadURL(c.UserContext(), currentUser(c).ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"url": url})
}
