package rest

import (
	"errors"

	"github.com/NorthPeak-Exteriors/site-backend/internal/application"
	"github.com/NorthPeak-Exteriors/site-backend/internal/application/dto"
	"github.com/NorthPeak-Exteriors/site-backend/internal/application/errs"
	"github.com/gofiber/fiber/v2"
)

type Server struct {
	commands *application.Collection
}

func NewServer(commands *application.Collection) *Server {
	return &Server{commands: commands}
}

func (s *Server) SubmitContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ContactResponse{Error: err.Error()})
	}

	resp, err := s.commands.SubmitContact.Execute(c.UserContext(), req)
	if err != nil {
		var validation errs.ValidationError
		if errors.As(err, &validation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ContactResponse{Error: validation.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ContactResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) Healthz(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("ok")
}

func RegisterHandlers(app *fiber.App, server *Server) {
	app.Post("/api/contact", server.SubmitContact)
	app.Get("/healthz", server.Healthz)
}
