package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ytakahashi/todo-api/internal/models"
	"github.com/ytakahashi/todo-api/internal/store"
	"github.com/ytakahashi/todo-api/internal/validation"
)

// TodoHandler serves the todo CRUD endpoints.
type TodoHandler struct {
	store *store.TodoStore
}

func NewTodoHandler(s *store.TodoStore) *TodoHandler {
	return &TodoHandler{store: s}
}

// Create handles POST /todos/. A missing or mistyped field fails with 422
// before anything is stored.
func (h *TodoHandler) Create(c echo.Context) error {
	req, err := validation.DecodeCreate(c.Request().Body)
	if err != nil {
		return requestError(c, err)
	}

	priority := 1
	if req.Priority != nil {
		priority = *req.Priority
	}

	todo := models.Todo{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		CreatedAt:   time.Now(),
		Completed:   false,
	}
	h.store.Save(todo)

	return c.JSON(http.StatusCreated, todo)
}

// List handles GET /todos/. An empty store yields an empty array.
func (h *TodoHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.List())
}

// Get handles GET /todos/:id.
func (h *TodoHandler) Get(c echo.Context) error {
	todo, err := h.lookup(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Update handles PATCH /todos/:id. Only fields present in the body are
// overwritten; id, created_at, and completed always carry over.
func (h *TodoHandler) Update(c echo.Context) error {
	todo, err := h.lookup(c.Param("id"))
	if err != nil {
		return err
	}

	req, err := validation.DecodeUpdate(c.Request().Body)
	if err != nil {
		return requestError(c, err)
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.DescriptionSet {
		// an explicit null clears the description
		todo.Description = req.Description
	}
	if req.Priority != nil {
		todo.Priority = *req.Priority
	}
	h.store.Save(todo)

	return c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /todos/:id.
func (h *TodoHandler) Delete(c echo.Context) error {
	todo, err := h.lookup(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.store.Delete(todo.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// lookup is the shared pre-check for the id-addressed endpoints.
func (h *TodoHandler) lookup(id string) (models.Todo, error) {
	todo, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Todo{}, echo.NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("Todo with ID %s not found", id))
		}
		return models.Todo{}, err
	}
	return todo, nil
}

// requestError renders a validation failure as 422 with field detail, and
// passes anything else through to echo's error handler.
func requestError(c echo.Context, err error) error {
	var ve *validation.Error
	if errors.As(err, &ve) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"detail": ve.Fields,
		})
	}
	return err
}
