package httpapi

import (
	"strconv"
	"time"

	"github.com/dynsched/dynsched/internal/server/models"
	tasksrepo "github.com/dynsched/dynsched/internal/server/repositories/tasks"
	"github.com/dynsched/dynsched/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) listTasks(c *fiber.Ctx) error {

	filter := tasksrepo.Filter{Status: c.Query("status")}
	if v := c.Query("priority"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "priority must be a number"})
		}
		filter.Priority = &p
	}

	list, err := s.tasks.List(c.UserContext(), filter)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(toTaskResponses(list))
}

func (s *Server) createTask(c *fiber.Ctx) error {

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	task, err := taskFromRequest(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid due date"})
	}

	created, err := s.tasks.Create(c.UserContext(), task)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(created))
}

func (s *Server) getTask(c *fiber.Ctx) error {
	task, err := s.tasks.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(toTaskResponse(task))
}

func (s *Server) updateTask(c *fiber.Ctx) error {

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	update := services.TaskUpdate{
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		Tags:        req.Tags,
	}
	if req.DueDate != nil {
		t, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid due date"})
		}
		update.DueDate = &t
	}

	task, err := s.tasks.Update(c.UserContext(), c.Params("id"), update)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(toTaskResponse(task))
}

func (s *Server) deleteTask(c *fiber.Ctx) error {
	if err := s.tasks.Delete(c.UserContext(), c.Params("id")); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}

func (s *Server) scheduleSuggestions(c *fiber.Ctx) error {

	var req SuggestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if len(req.Tasks) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "please provide tasks to schedule"})
	}

	refs := make([]services.TaskRef, 0, len(req.Tasks))
	for _, dto := range req.Tasks {
		if dto.Inline == nil {
			refs = append(refs, services.TaskRef{ID: dto.ID})
			continue
		}
		inline, err := taskFromRequest(dto.Inline)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid due date"})
		}
		refs = append(refs, services.TaskRef{Inline: inline})
	}

	ranked, err := s.tasks.Suggestions(c.UserContext(), refs)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(SuggestionsResponse{
		SuggestedSchedule: toTaskResponses(ranked),
		SchedulingNotes:   "Tasks are arranged by priority (highest first) and then by due date.",
	})
}

func taskFromRequest(req *TaskRequest) (*models.Task, error) {
	task := &models.Task{}
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		t, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = &t
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Tags != nil {
		task.Tags = *req.Tags
	}
	return task, nil
}
