package todo

import (
	"context"
)

// TodoRepository defines data access methods for todo items.
type TodoRepository interface {
	// List returns items matching filter. Implementations may push any part of
	// the filter down to the store; callers re-apply it in memory.
	List(ctx context.Context, filter Filter) ([]Item, error)

	// GetByID returns ErrTodoNotFound when the item does not exist
	GetByID(ctx context.Context, id string) (Item, error)

	Create(ctx context.Context, item Item) (Item, error)

	// Update applies patch and returns the stored item. ErrTodoNotFound if absent.
	Update(ctx context.Context, id string, patch ItemPatch) (Item, error)

	// Delete returns ErrTodoNotFound when nothing was deleted
	Delete(ctx context.Context, id string) error
}

type ProjectRepository interface {
	// GetByCode returns ErrProjectNotFound for unknown or inactive projects
	GetByCode(ctx context.Context, code string) (Project, error)
}
