package rest

import (
	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/gofiber/fiber/v2"
)

type signupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func invalidBody() error {
	return common.WithDetail(common.ErrValidation, "Invalid request body")
}

func (s *HTTPServer) signup(c *fiber.Ctx) error {
	var body signupRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody()
	}

	user, err := s.users.Signup(c.UserContext(), body.Email, body.Password, body.FullName)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (s *HTTPServer) login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody()
	}

	token, err := s.users.Login(c.UserContext(), body.Email, body.Password)
	if err != nil {
		return err
	}

	return c.JSON(tokenResponse{AccessToken: token, TokenType: common.TokenType})
}

func (s *HTTPServer) me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

// logout only acknowledges; tokens stay valid until they expire.
func (s *HTTPServer) logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
