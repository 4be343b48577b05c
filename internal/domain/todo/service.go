package todo

import (
	"context"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
)

// TodoService defines business logic for todo operations
type TodoService interface {
	// List returns the todos visible to the actor, highest priority first
	List(ctx context.Context, actor user.Actor, filter Filter) (ListTodoResponse, error)

	// Board groups the visible todos into kanban columns
	Board(ctx context.Context, actor user.Actor, filter Filter) (BoardResponse, error)

	Get(ctx context.Context, actor user.Actor, id string) (TodoResponse, error)

	Create(ctx context.Context, actor user.Actor, req CreateTodoRequest) (TodoResponse, error)

	// Update applies a partial update, subject to ownership and the edit lock
	Update(ctx context.Context, actor user.Actor, id string, req UpdateTodoRequest) (TodoResponse, error)

	// UpdateStatus moves a todo to another column, subject to the same rules as Update
	UpdateStatus(ctx context.Context, actor user.Actor, id string, req UpdateStatusRequest) (TodoResponse, error)

	Delete(ctx context.Context, actor user.Actor, id string) error
}
