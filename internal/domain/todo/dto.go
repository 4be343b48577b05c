package todo

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/validator"
)

const (
	MaxTitleLength = 200
	MaxTextLength  = 5000
)

type CreateTodoRequest struct {
	ProjectCode string  `json:"project_code"`
	AssigneeID  *string `json:"assignee_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Issue       *string `json:"issue"`
	Solution    *string `json:"solution"`
	Decision    *string `json:"decision"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

func (r *CreateTodoRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidProjectCode(r.ProjectCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_code",
			Message: "project_code must be 4 uppercase letters or digits",
		})
	}
	if r.AssigneeID != nil && validator.IsEmpty(*r.AssigneeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignee_id",
			Message: "assignee_id must not be empty",
		})
	}
	errs = append(errs, validateTitle(&r.Title, true)...)
	errs = append(errs, validateTextFields(r.Description, r.Issue, r.Solution, r.Decision, r.Notes)...)
	errs = append(errs, validateStatus(r.Status)...)
	errs = append(errs, validateDueDate(r.DueDate, false)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Issue       *string `json:"issue"`
	Solution    *string `json:"solution"`
	Decision    *string `json:"decision"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

// IsEmpty reports whether the request changes nothing.
func (r *UpdateTodoRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Issue == nil && r.Solution == nil &&
		r.Decision == nil && r.Notes == nil && r.Status == nil && r.DueDate == nil
}

func (r *UpdateTodoRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateTitle(r.Title, false)...)
	errs = append(errs, validateTextFields(r.Description, r.Issue, r.Solution, r.Decision, r.Notes)...)
	errs = append(errs, validateStatus(r.Status)...)
	errs = append(errs, validateDueDate(r.DueDate, true)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToPatch converts a validated request into a store patch.
func (r *UpdateTodoRequest) ToPatch() ItemPatch {
	patch := ItemPatch{
		Title:       trimmed(r.Title),
		Description: r.Description,
		Issue:       r.Issue,
		Solution:    r.Solution,
		Decision:    r.Decision,
		Notes:       r.Notes,
	}
	if r.Status != nil {
		status := Status(*r.Status)
		patch.Status = &status
	}
	if r.DueDate != nil {
		if *r.DueDate == "" {
			patch.ClearDueDate = true
		} else if due, ok := validator.IsValidDate(*r.DueDate); ok {
			patch.DueDate = &due
		}
	}
	return patch
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else {
		errs = append(errs, validateStatus(&r.Status)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseListFilter reads list filters from query values. Multi-value
// parameters accept comma-separated lists.
func ParseListFilter(q url.Values) (Filter, error) {
	var errs validator.ValidationErrors
	filter := Filter{
		ProjectIDs:  splitList(q.Get("project_ids")),
		AssigneeIDs: splitList(q.Get("assignee_ids")),
		SearchText:  strings.TrimSpace(q.Get("q")),
	}

	for _, raw := range splitList(q.Get("statuses")) {
		status := Status(raw)
		if !status.IsValid() {
			errs = append(errs, validator.ValidationError{
				Field:   "statuses",
				Message: "unknown status: " + raw,
			})
			continue
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	if v := q.Get("due_from"); v != "" {
		if d, ok := validator.IsValidDate(v); ok {
			filter.DueFrom = &d
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "due_from",
				Message: "due_from must be in YYYY-MM-DD format",
			})
		}
	}
	if v := q.Get("due_to"); v != "" {
		if d, ok := validator.IsValidDate(v); ok {
			filter.DueTo = &d
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "due_to",
				Message: "due_to must be in YYYY-MM-DD format",
			})
		}
	}
	if filter.DueFrom != nil && filter.DueTo != nil && filter.DueTo.Before(*filter.DueFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "due_to",
			Message: "due_to must not be before due_from",
		})
	}

	if len(errs) > 0 {
		return filter, errs
	}
	return filter, nil
}

// validateTitle rejects a blank title whenever one is given. A nil title is only
// an error when required.
func validateTitle(title *string, required bool) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if title == nil || validator.IsEmpty(*title) {
		if title != nil || required {
			errs = append(errs, validator.ValidationError{
				Field:   "title",
				Message: "title is required",
			})
		}
		return errs
	}
	if utf8.RuneCountInString(*title) > MaxTitleLength {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 200 characters",
		})
	}
	return errs
}

func validateTextFields(description, issue, solution, decision, notes *string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	fields := []struct {
		name  string
		value *string
	}{
		{"description", description},
		{"issue", issue},
		{"solution", solution},
		{"decision", decision},
		{"notes", notes},
	}
	for _, f := range fields {
		if f.value != nil && utf8.RuneCountInString(*f.value) > MaxTextLength {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: f.name + " must not exceed 5000 characters",
			})
		}
	}
	return errs
}

func validateStatus(status *string) validator.ValidationErrors {
	if status == nil || Status(*status).IsValid() {
		return nil
	}
	return validator.ValidationErrors{{
		Field:   "status",
		Message: "status must be one of prework, design, hold, po_placed, incoming",
	}}
}

func validateDueDate(due *string, allowClear bool) validator.ValidationErrors {
	if due == nil || (allowClear && *due == "") {
		return nil
	}
	if _, ok := validator.IsValidDate(*due); !ok {
		return validator.ValidationErrors{{
			Field:   "due_date",
			Message: "due_date must be in YYYY-MM-DD format",
		}}
	}
	return nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

type TodoResponse struct {
	ID           string         `json:"id"`
	ProjectID    string         `json:"project_id"`
	ProjectCode  string         `json:"project_code"`
	ProjectName  string         `json:"project_name"`
	AssigneeID   string         `json:"assignee_id"`
	AssigneeName string         `json:"assignee_name"`
	Title        string         `json:"title"`
	Description  *string        `json:"description"`
	Issue        *string        `json:"issue"`
	Solution     *string        `json:"solution"`
	Decision     *string        `json:"decision"`
	Notes        *string        `json:"notes"`
	Status       Status         `json:"status"`
	StatusLabel  string         `json:"status_label"`
	DueDate      *string        `json:"due_date"`
	LockedAt     *time.Time     `json:"locked_at"`
	EditLock     EditLockStatus `json:"edit_lock"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func NewTodoResponse(item Item, lock EditLockStatus) TodoResponse {
	resp := TodoResponse{
		ID:           item.ID,
		ProjectID:    item.ProjectID,
		ProjectCode:  item.ProjectCode,
		ProjectName:  item.ProjectName,
		AssigneeID:   item.AssigneeID,
		AssigneeName: item.AssigneeName,
		Title:        item.Title,
		Description:  item.Description,
		Issue:        item.Issue,
		Solution:     item.Solution,
		Decision:     item.Decision,
		Notes:        item.Notes,
		Status:       item.Status,
		StatusLabel:  item.Status.Label(),
		LockedAt:     item.LockedAt,
		EditLock:     lock,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
	if key := item.DueDateKey(); key != "" {
		resp.DueDate = &key
	}
	return resp
}

type ListTodoResponse struct {
	Todos []TodoResponse `json:"todos"`
	Total int            `json:"total"`
}

type BoardItemResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	ProjectCode  string     `json:"project_code"`
	AssigneeName string     `json:"assignee_name"`
	DueDate      *string    `json:"due_date"`
	LockedAt     *time.Time `json:"locked_at"`
}

type BoardColumnResponse struct {
	Status Status              `json:"status"`
	Label  string              `json:"label"`
	Count  int                 `json:"count"`
	Items  []BoardItemResponse `json:"items"`
}

type BoardStatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[Status]int `json:"by_status"`
	Overdue  int            `json:"overdue"`
	DueToday int            `json:"due_today"`
}

type BoardResponse struct {
	Date    string                `json:"date"`
	Columns []BoardColumnResponse `json:"columns"`
	Stats   BoardStatsResponse    `json:"stats"`
}

func NewBoardResponse(board Board, dateKey string) BoardResponse {
	columns := make([]BoardColumnResponse, 0, len(board.Columns))
	for _, col := range board.Columns {
		items := make([]BoardItemResponse, 0, len(col.Items))
		for _, item := range col.Items {
			bi := BoardItemResponse{
				ID:           item.ID,
				Title:        item.Title,
				ProjectCode:  item.ProjectCode,
				AssigneeName: item.AssigneeName,
				LockedAt:     item.LockedAt,
			}
			if key := item.DueDateKey(); key != "" {
				bi.DueDate = &key
			}
			items = append(items, bi)
		}
		columns = append(columns, BoardColumnResponse{
			Status: col.Status,
			Label:  col.Label,
			Count:  col.Count,
			Items:  items,
		})
	}
	return BoardResponse{
		Date:    dateKey,
		Columns: columns,
		Stats: BoardStatsResponse{
			Total:    board.Stats.Total,
			ByStatus: board.Stats.ByStatus,
			Overdue:  board.Stats.Overdue,
			DueToday: board.Stats.DueToday,
		},
	}
}
