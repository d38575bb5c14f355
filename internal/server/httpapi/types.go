package httpapi

import (
	"encoding/json"
	"time"

	"github.com/dynsched/dynsched/internal/server/models"
)

// Wire formats for dates: events carry a full RFC 3339 timestamp, task due
// dates are plain calendar days.
const dueDateLayout = "2006-01-02"

type ErrorResponse struct {
	Error string `json:"error"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

// EventRequest doubles as create and partial-update payload; on update, nil
// fields are left unchanged.
type EventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	EventTime   *string `json:"time"`
	Priority    *int    `json:"priority"`
	Category    *string `json:"category"`
}

type EventResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	EventTime   string    `json:"time,omitempty"`
	Priority    int       `json:"priority"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskRequest doubles as create and partial-update payload.
type TaskRequest struct {
	Name        *string   `json:"task_name"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"due_date"`
	Priority    *int      `json:"priority"`
	Status      *string   `json:"status"`
	Tags        *[]string `json:"tags"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"task_name"`
	Description string     `json:"description"`
	DueDate     string     `json:"due_date,omitempty"`
	Priority    int        `json:"priority"`
	Status      string     `json:"status"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// SuggestionsRequest accepts a mixed tasks array: string elements address
// stored tasks by id, object elements are ranked inline without persistence.
type SuggestionsRequest struct {
	Tasks []TaskRefDTO `json:"tasks"`
}

type TaskRefDTO struct {
	ID     string
	Inline *TaskRequest
}

func (r *TaskRefDTO) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		return nil
	}
	inline := &TaskRequest{}
	if err := json.Unmarshal(b, inline); err != nil {
		return err
	}
	r.Inline = inline
	return nil
}

type SuggestionsResponse struct {
	SuggestedSchedule []TaskResponse `json:"suggested_schedule"`
	SchedulingNotes   string         `json:"scheduling_notes"`
}

type AvatarUploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type AvatarResponse struct {
	ImageURL string `json:"image_url"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		EventTime:   e.EventTime,
		Priority:    e.Priority,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
	}
}

func toEventResponses(list []*models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toTaskResponse(t *models.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		Tags:        t.Tags,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(dueDateLayout)
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}

func toTaskResponses(list []*models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTaskResponse(t))
	}
	return out
}
