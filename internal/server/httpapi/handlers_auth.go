package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) register(c *fiber.Ctx) error {

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	user, token, err := s.users.Register(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	s.logger.Info(c.UserContext(), "Registered", "username", user.Username)
	return c.Status(fiber.StatusCreated).JSON(RegisterResponse{
		User:        toUserResponse(user),
		AccessToken: token,
	})
}

func (s *Server) login(c *fiber.Ctx) error {

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	token, err := s.users.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(TokenResponse{AccessToken: token})
}

func (s *Server) getOwnProfile(c *fiber.Ctx) error {
	user, err := s.users.GetProfile(c.UserContext(), authedUserID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(toUserResponse(user))
}

func (s *Server) getUserProfile(c *fiber.Ctx) error {
	user, err := s.users.GetProfile(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(toUserResponse(user))
}

func (s *Server) beginAvatarUpload(c *fiber.Ctx) error {
	url, err := s.profiles.BeginAvatarUpload(c.UserContext(), authedUserID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(AvatarUploadResponse{UploadURL: url})
}

func (s *Server) getAvatar(c *fiber.Ctx) error {
	url, err := s.profiles.AvatarURL(c.UserContext(), authedUserID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(AvatarResponse{ImageURL: url})
}
