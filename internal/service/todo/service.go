package todo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/todo"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/validator"
)

type TodoServiceImpl struct {
	todos    todo.TodoRepository
	projects todo.ProjectRepository
	clock    timezone.Clock
	loc      *time.Location
	lockHour int
}

func NewTodoService(todoRepository todo.TodoRepository, projectRepository todo.ProjectRepository, clock timezone.Clock, loc *time.Location, lockHour int) todo.TodoService {
	return &TodoServiceImpl{
		todos:    todoRepository,
		projects: projectRepository,
		clock:    clock,
		loc:      loc,
		lockHour: lockHour,
	}
}

// scope restricts filter to what actor may see. Members only see their own todos.
func scope(actor user.Actor, filter todo.Filter) (todo.Filter, error) {
	if !user.IsAllowed(actor.Role) {
		return filter, user.ErrRoleNotAllowed
	}
	if !actor.IsAdmin() {
		filter.AssigneeIDs = []string{actor.ID}
	}
	return filter, nil
}

func (s *TodoServiceImpl) listVisible(ctx context.Context, actor user.Actor, filter todo.Filter) ([]todo.Item, error) {
	filter, err := scope(actor, filter)
	if err != nil {
		return nil, err
	}
	items, err := s.todos.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return filter.Apply(items), nil
}

func (s *TodoServiceImpl) toResponse(item todo.Item, actor user.Actor, now time.Time) todo.TodoResponse {
	return todo.NewTodoResponse(item, todo.EditLockFor(item, actor.Role, now))
}

// List implements todo.TodoService.
func (s *TodoServiceImpl) List(ctx context.Context, actor user.Actor, filter todo.Filter) (todo.ListTodoResponse, error) {
	items, err := s.listVisible(ctx, actor, filter)
	if err != nil {
		return todo.ListTodoResponse{}, err
	}

	now := s.clock()
	sorted := todo.SortByPriority(items, timezone.StartOfDay(now, s.loc))
	resp := todo.ListTodoResponse{
		Todos: make([]todo.TodoResponse, 0, len(sorted)),
		Total: len(sorted),
	}
	for _, item := range sorted {
		resp.Todos = append(resp.Todos, s.toResponse(item, actor, now))
	}
	return resp, nil
}

// Board implements todo.TodoService.
func (s *TodoServiceImpl) Board(ctx context.Context, actor user.Actor, filter todo.Filter) (todo.BoardResponse, error) {
	items, err := s.listVisible(ctx, actor, filter)
	if err != nil {
		return todo.BoardResponse{}, err
	}

	todayKey := timezone.DateKey(s.clock(), s.loc)
	return todo.NewBoardResponse(todo.BuildBoard(items, todayKey), todayKey), nil
}

// getOwned loads a todo and checks that actor may act on it.
func (s *TodoServiceImpl) getOwned(ctx context.Context, actor user.Actor, id string) (todo.Item, error) {
	item, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return todo.Item{}, fmt.Errorf("failed to get todo %s: %w", id, err)
	}
	if !actor.IsAdmin() && item.AssigneeID != actor.ID {
		return todo.Item{}, todo.ErrNotAssignee
	}
	return item, nil
}

// Get implements todo.TodoService.
func (s *TodoServiceImpl) Get(ctx context.Context, actor user.Actor, id string) (todo.TodoResponse, error) {
	if !user.IsAllowed(actor.Role) {
		return todo.TodoResponse{}, user.ErrRoleNotAllowed
	}
	item, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return todo.TodoResponse{}, err
	}
	return s.toResponse(item, actor, s.clock()), nil
}

// Create implements todo.TodoService.
func (s *TodoServiceImpl) Create(ctx context.Context, actor user.Actor, req todo.CreateTodoRequest) (todo.TodoResponse, error) {
	if !user.IsAllowed(actor.Role) || !user.Resolve(actor.Role).CanCreateTodo {
		return todo.TodoResponse{}, user.ErrRoleNotAllowed
	}
	if err := req.Validate(); err != nil {
		return todo.TodoResponse{}, err
	}

	assigneeID := actor.ID
	if req.AssigneeID != nil && *req.AssigneeID != actor.ID {
		if !actor.IsAdmin() {
			return todo.TodoResponse{}, todo.ErrAssignNotAllowed
		}
		assigneeID = *req.AssigneeID
	}

	project, err := s.projects.GetByCode(ctx, req.ProjectCode)
	if err != nil {
		return todo.TodoResponse{}, fmt.Errorf("failed to resolve project %s: %w", req.ProjectCode, err)
	}

	status := todo.StatusPrework
	if req.Status != nil {
		status = todo.Status(*req.Status)
	}

	now := s.clock()
	lockedAt := todo.ComputeLockDeadlineAt(now, s.loc, s.lockHour)
	newItem := todo.Item{
		ProjectID:   project.ID,
		AssigneeID:  assigneeID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Issue:       req.Issue,
		Solution:    req.Solution,
		Decision:    req.Decision,
		Notes:       req.Notes,
		Status:      status,
		LockedAt:    &lockedAt,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	if req.DueDate != nil {
		if due, ok := validator.IsValidDate(*req.DueDate); ok {
			newItem.DueDate = &due
		}
	}

	created, err := s.todos.Create(ctx, newItem)
	if err != nil {
		return todo.TodoResponse{}, fmt.Errorf("failed to create todo: %w", err)
	}
	return s.toResponse(created, actor, now), nil
}

// Update implements todo.TodoService.
func (s *TodoServiceImpl) Update(ctx context.Context, actor user.Actor, id string, req todo.UpdateTodoRequest) (todo.TodoResponse, error) {
	if !user.IsAllowed(actor.Role) {
		return todo.TodoResponse{}, user.ErrRoleNotAllowed
	}
	if req.IsEmpty() {
		return todo.TodoResponse{}, todo.ErrEmptyUpdate
	}
	if err := req.Validate(); err != nil {
		return todo.TodoResponse{}, err
	}
	return s.mutate(ctx, actor, id, req.ToPatch())
}

// UpdateStatus implements todo.TodoService.
func (s *TodoServiceImpl) UpdateStatus(ctx context.Context, actor user.Actor, id string, req todo.UpdateStatusRequest) (todo.TodoResponse, error) {
	if !user.IsAllowed(actor.Role) {
		return todo.TodoResponse{}, user.ErrRoleNotAllowed
	}
	if err := req.Validate(); err != nil {
		return todo.TodoResponse{}, err
	}
	status := todo.Status(req.Status)
	return s.mutate(ctx, actor, id, todo.ItemPatch{Status: &status})
}

// mutate applies patch after the ownership and edit-lock checks. Every
// successful write pushes the lock deadline to the next morning.
func (s *TodoServiceImpl) mutate(ctx context.Context, actor user.Actor, id string, patch todo.ItemPatch) (todo.TodoResponse, error) {
	item, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return todo.TodoResponse{}, err
	}

	now := s.clock()
	if todo.IsLocked(item.LockedAt, now, actor.Role) {
		return todo.TodoResponse{}, todo.ErrTodoLocked
	}

	lockedAt := todo.ComputeLockDeadlineAt(now, s.loc, s.lockHour)
	patch.LockedAt = &lockedAt

	updated, err := s.todos.Update(ctx, id, patch)
	if err != nil {
		return todo.TodoResponse{}, fmt.Errorf("failed to update todo %s: %w", id, err)
	}
	return s.toResponse(updated, actor, now), nil
}

// Delete implements todo.TodoService.
func (s *TodoServiceImpl) Delete(ctx context.Context, actor user.Actor, id string) error {
	if !user.IsAllowed(actor.Role) {
		return user.ErrRoleNotAllowed
	}
	if !user.Resolve(actor.Role).CanDeleteTodo {
		return todo.ErrDeleteNotAllowed
	}
	if err := s.todos.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete todo %s: %w", id, err)
	}
	return nil
}
