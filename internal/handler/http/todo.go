package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/todo"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
	"github.com/go-chi/chi/v5"
)

type TodoHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Board(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type todoHandlerImpl struct {
	todoService todo.TodoService
	clock       timezone.Clock
}

func NewTodoHandler(todoService todo.TodoService, clock timezone.Clock) TodoHandler {
	return &todoHandlerImpl{
		todoService: todoService,
		clock:       clock,
	}
}

// List implements TodoHandler.
func (h *todoHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	filter, err := todo.ParseListFilter(r.URL.Query())
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	result, err := h.todoService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Success(w, h.clock(), result)
}

// Board implements TodoHandler.
func (h *todoHandlerImpl) Board(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	filter, err := todo.ParseListFilter(r.URL.Query())
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	result, err := h.todoService.Board(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Success(w, h.clock(), result)
}

// Create implements TodoHandler.
func (h *todoHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	var req todo.CreateTodoRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		slog.WarnContext(r.Context(), "create todo decode error", "error", err)
		response.BadRequest(w, h.clock(), "Invalid request format")
		return
	}

	result, err := h.todoService.Create(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Created(w, h.clock(), result)
}

// Get implements TodoHandler.
func (h *todoHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	result, err := h.todoService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Success(w, h.clock(), result)
}

// Update implements TodoHandler.
func (h *todoHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	var req todo.UpdateTodoRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		slog.WarnContext(r.Context(), "update todo decode error", "error", err)
		response.BadRequest(w, h.clock(), "Invalid request format")
		return
	}

	result, err := h.todoService.Update(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Success(w, h.clock(), result)
}

// UpdateStatus implements TodoHandler. Used by the kanban drag and drop.
func (h *todoHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	var req todo.UpdateStatusRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		slog.WarnContext(r.Context(), "update todo status decode error", "error", err)
		response.BadRequest(w, h.clock(), "Invalid request format")
		return
	}

	result, err := h.todoService.UpdateStatus(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Success(w, h.clock(), result)
}

// Delete implements TodoHandler.
func (h *todoHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.todoService.Delete(r.Context(), actor, id); err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Success(w, h.clock(), map[string]string{"id": id})
}
