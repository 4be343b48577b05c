package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/todo"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type todoRepositoryImpl struct {
	db *database.DB
}

func NewTodoRepository(db *database.DB) todo.TodoRepository {
	return &todoRepositoryImpl{db: db}
}

const todoSelect = `
	SELECT t.id, t.project_id, p.code, p.name, t.assignee_id, u.name,
		t.title, t.description, t.issue, t.solution, t.decision, t.notes,
		t.status, t.due_date, t.locked_at, t.created_at, t.updated_at
	FROM todos t
	JOIN projects p ON p.id = t.project_id
	JOIN users u ON u.id = t.assignee_id
`

func scanTodo(row scanner) (todo.Item, error) {
	var (
		item   todo.Item
		status string
	)
	err := row.Scan(
		&item.ID,
		&item.ProjectID,
		&item.ProjectCode,
		&item.ProjectName,
		&item.AssigneeID,
		&item.AssigneeName,
		&item.Title,
		&item.Description,
		&item.Issue,
		&item.Solution,
		&item.Decision,
		&item.Notes,
		&status,
		&item.DueDate,
		&item.LockedAt,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return todo.Item{}, err
	}
	item.Status = todo.Status(status)
	return item, nil
}

// List implements todo.TodoRepository. Every filter condition is pushed down to SQL.
func (r *todoRepositoryImpl) List(ctx context.Context, filter todo.Filter) ([]todo.Item, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []any
	)
	addCondition := func(format string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		addCondition("t.status = ANY($%d::text[])", statuses)
	}
	if len(filter.ProjectIDs) > 0 {
		addCondition("t.project_id::text = ANY($%d::text[])", filter.ProjectIDs)
	}
	if len(filter.AssigneeIDs) > 0 {
		addCondition("t.assignee_id::text = ANY($%d::text[])", filter.AssigneeIDs)
	}
	if filter.DueFrom != nil {
		addCondition("t.due_date >= $%d::date", filter.DueFrom.Format("2006-01-02"))
	}
	if filter.DueTo != nil {
		addCondition("t.due_date <= $%d::date", filter.DueTo.Format("2006-01-02"))
	}
	if filter.SearchText != "" {
		args = append(args, "%"+filter.SearchText+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(t.title ILIKE $%d OR COALESCE(t.description, '') ILIKE $%d OR p.code ILIKE $%d OR p.name ILIKE $%d)",
			n, n, n, n))
	}

	query := todoSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t.created_at ASC, t.id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var items []todo.Item
	for rows.Next() {
		item, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}
	return items, nil
}

// GetByID implements todo.TodoRepository.
func (r *todoRepositoryImpl) GetByID(ctx context.Context, id string) (todo.Item, error) {
	if !validator.IsValidUUID(id) {
		return todo.Item{}, todo.ErrTodoNotFound
	}
	q := GetQuerier(ctx, r.db)

	item, err := scanTodo(q.QueryRow(ctx, todoSelect+" WHERE t.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return todo.Item{}, todo.ErrTodoNotFound
		}
		return todo.Item{}, fmt.Errorf("failed to get todo: %w", err)
	}
	return item, nil
}

// Create implements todo.TodoRepository. The joined row is re-read in the same transaction.
func (r *todoRepositoryImpl) Create(ctx context.Context, item todo.Item) (todo.Item, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return todo.Item{}, fmt.Errorf("failed to generate todo id: %w", err)
	}

	var created todo.Item
	err = WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO todos (
				id, project_id, assignee_id, title, description, issue, solution, decision, notes,
				status, due_date, locked_at, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`
		_, err := q.Exec(txCtx, query,
			id.String(),
			item.ProjectID,
			item.AssigneeID,
			item.Title,
			item.Description,
			item.Issue,
			item.Solution,
			item.Decision,
			item.Notes,
			string(item.Status),
			item.DueDate,
			item.LockedAt,
			item.CreatedAt,
			item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert todo: %w", err)
		}

		created, err = r.GetByID(txCtx, id.String())
		return err
	})
	if err != nil {
		return todo.Item{}, err
	}
	return created, nil
}

// Update implements todo.TodoRepository. Only the fields set in patch are written.
func (r *todoRepositoryImpl) Update(ctx context.Context, id string, patch todo.ItemPatch) (todo.Item, error) {
	if !validator.IsValidUUID(id) {
		return todo.Item{}, todo.ErrTodoNotFound
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Issue != nil {
		set("issue", *patch.Issue)
	}
	if patch.Solution != nil {
		set("solution", *patch.Solution)
	}
	if patch.Decision != nil {
		set("decision", *patch.Decision)
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	switch {
	case patch.ClearDueDate:
		sets = append(sets, "due_date = NULL")
	case patch.DueDate != nil:
		set("due_date", patch.DueDate.Format("2006-01-02"))
	}
	if patch.LockedAt != nil {
		set("locked_at", *patch.LockedAt)
	}
	if len(sets) == 0 {
		return todo.Item{}, todo.ErrEmptyUpdate
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE todos SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	var updated todo.Item
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		tag, err := q.Exec(txCtx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update todo: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return todo.ErrTodoNotFound
		}

		updated, err = r.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return todo.Item{}, err
	}
	return updated, nil
}

// Delete implements todo.TodoRepository.
func (r *todoRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return todo.ErrTodoNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return todo.ErrTodoNotFound
	}
	return nil
}

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) todo.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// GetByCode implements todo.ProjectRepository.
func (r *projectRepositoryImpl) GetByCode(ctx context.Context, code string) (todo.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, code, name, is_active FROM projects WHERE code = $1 AND is_active`

	var p todo.Project
	err := q.QueryRow(ctx, query, code).Scan(&p.ID, &p.Code, &p.Name, &p.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return todo.Project{}, todo.ErrProjectNotFound
		}
		return todo.Project{}, fmt.Errorf("failed to get project by code: %w", err)
	}
	return p, nil
}
