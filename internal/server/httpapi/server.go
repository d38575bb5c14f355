// Package httpapi exposes the scheduling services over HTTP. It owns
// routing, bearer-token authentication, JSON shaping, and the mapping from
// service errors to status codes.
package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/dynsched/dynsched/internal/common"
	"github.com/dynsched/dynsched/internal/logging"
	"github.com/dynsched/dynsched/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	address   string
	logger    logging.Logger
	users     *services.UserService
	events    *services.EventService
	tasks     *services.TaskService
	profiles  *services.ProfileService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, es *services.EventService,
	ts *services.TaskService, ps *services.ProfileService, secretKey string) *Server {

	s := &Server{
		app:       fiber.New(fiber.Config{DisableStartupMessage: true}),
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		events:    es,
		tasks:     ts,
		profiles:  ps,
		jwtSecret: []byte(secretKey),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(cors.New(cors.Config{
		AllowHeaders: "Content-Type,Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := s.app.Group("/api")
	api.Get("/", s.home)

	api.Post("/auth/register", s.register)
	api.Post("/auth/login", s.login)

	authed := api.Group("", s.requireAuth)

	authed.Get("/events", s.listEvents)
	authed.Post("/events", s.createEvent)
	authed.Get("/events/:id", s.getEvent)
	authed.Put("/events/:id", s.updateEvent)
	authed.Delete("/events/:id", s.deleteEvent)

	authed.Get("/tasks", s.listTasks)
	authed.Post("/tasks", s.createTask)
	authed.Get("/tasks/:id", s.getTask)
	authed.Put("/tasks/:id", s.updateTask)
	authed.Delete("/tasks/:id", s.deleteTask)

	authed.Post("/schedule/suggestions", s.scheduleSuggestions)

	authed.Get("/profile", s.getOwnProfile)
	authed.Get("/users/:id", s.getUserProfile)
	authed.Post("/profile/avatar", s.beginAvatarUpload)
	authed.Get("/profile/avatar", s.getAvatar)
}

func (s *Server) home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Dynamic Scheduling System API Running!"})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.ShutdownWithTimeout(5 * time.Second)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
	return s.app.Listen(s.address)
}

// writeError maps service sentinel errors onto HTTP statuses. Unrecognized
// errors are logged and reported as a bare 500.
func (s *Server) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "missing or malformed fields"})
	case errors.Is(err, common.ErrorUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, common.ErrorForbidden):
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: "forbidden"})
	case errors.Is(err, common.ErrorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "not found"})
	case errors.Is(err, common.ErrorAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: "already exists"})
	case errors.Is(err, common.ErrorUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: "storage unavailable"})
	default:
		s.logger.Error(c.UserContext(), "unexpected error", "err", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
	}
}
