package todo

import "errors"

// Todo domain errors
var (
	ErrTodoNotFound     = errors.New("todo not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrEmptyUpdate      = errors.New("no fields to update")
	ErrTodoLocked       = errors.New("editing window has closed; ask an admin to make changes")
	ErrNotAssignee      = errors.New("only the assignee can modify this todo")
	ErrDeleteNotAllowed = errors.New("only admins can delete todos")
	ErrAssignNotAllowed = errors.New("members can only create todos for themselves")
)
