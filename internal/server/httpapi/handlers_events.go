package httpapi

import (
	"time"

	"github.com/dynsched/dynsched/internal/server/models"
	eventsrepo "github.com/dynsched/dynsched/internal/server/repositories/events"
	"github.com/dynsched/dynsched/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) listEvents(c *fiber.Ctx) error {

	filter := eventsrepo.Filter{}
	if v := c.Query("start"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid start date"})
		}
		filter.Start = &t
	}
	if v := c.Query("end"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid end date"})
		}
		filter.End = &t
	}

	list, err := s.events.List(c.UserContext(), authedUserID(c), filter)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(toEventResponses(list))
}

func (s *Server) createEvent(c *fiber.Ctx) error {

	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	event := &models.Event{}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		t, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid date"})
		}
		event.Date = t
	}
	if req.EventTime != nil {
		event.EventTime = *req.EventTime
	}
	if req.Priority != nil {
		event.Priority = *req.Priority
	}
	if req.Category != nil {
		event.Category = *req.Category
	}

	created, err := s.events.Create(c.UserContext(), authedUserID(c), event)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toEventResponse(created))
}

func (s *Server) getEvent(c *fiber.Ctx) error {
	event, err := s.events.Get(c.UserContext(), authedUserID(c), c.Params("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(toEventResponse(event))
}

func (s *Server) updateEvent(c *fiber.Ctx) error {

	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	update := services.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		EventTime:   req.EventTime,
		Priority:    req.Priority,
		Category:    req.Category,
	}
	if req.Date != nil {
		t, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid date"})
		}
		update.Date = &t
	}

	event, err := s.events.Update(c.UserContext(), authedUserID(c), c.Params("id"), update)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(toEventResponse(event))
}

func (s *Server) deleteEvent(c *fiber.Ctx) error {
	if err := s.events.Delete(c.UserContext(), authedUserID(c), c.Params("id")); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Event deleted successfully"})
}
