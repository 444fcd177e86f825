package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/services"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTodoRequest struct {
	Title string `json:"title"`
}

type updateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type userResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type todoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, DisplayName: u.DisplayName, Email: u.Email}
}

func newTodoResponse(t *models.Todo) todoResponse {
	return todoResponse{ID: t.ID, Title: t.Title, Completed: t.Completed, CreatedAt: t.CreatedAt}
}

// mapError converts a domain error into the stable JSON error contract.
// Unexpected errors are logged with detail and surfaced as a generic 500.
func (s *Server) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorConflict):
		return c.JSON(http.StatusConflict, msgResponse{Msg: "Email already taken"})
	case errors.Is(err, common.ErrorUnauthorized):
		return c.JSON(http.StatusUnauthorized, msgResponse{Msg: "Bad credentials"})
	case errors.Is(err, common.ErrorValidation):
		return c.JSON(http.StatusBadRequest, msgResponse{Msg: "Invalid input"})
	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, msgResponse{Msg: "Todo not found"})
	default:
		s.logger.Error(c.Request().Context(), "unexpected error", "error", err)
		return c.JSON(http.StatusInternalServerError, msgResponse{Msg: "Server error"})
	}
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msgResponse{Msg: "Invalid input"})
	}

	user, token, err := s.users.Register(c.Request().Context(), req.DisplayName, req.Email, req.Password)
	if err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: newUserResponse(user)})
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msgResponse{Msg: "Invalid input"})
	}

	user, token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: newUserResponse(user)})
}

func (s *Server) listTodos(c echo.Context) error {
	items, err := s.todos.List(c.Request().Context(), authenticatedUserID(c))
	if err != nil {
		return s.mapError(c, err)
	}

	resp := make([]todoResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, newTodoResponse(item))
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) createTodo(c echo.Context) error {
	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msgResponse{Msg: "Invalid input"})
	}

	todo, err := s.todos.Create(c.Request().Context(), authenticatedUserID(c), req.Title)
	if err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(http.StatusCreated, newTodoResponse(todo))
}

func (s *Server) updateTodo(c echo.Context) error {
	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msgResponse{Msg: "Invalid input"})
	}

	patch := services.TodoPatch{Title: req.Title, Completed: req.Completed}
	todo, err := s.todos.Update(c.Request().Context(), authenticatedUserID(c), c.Param("id"), patch)
	if err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(http.StatusOK, newTodoResponse(todo))
}

func (s *Server) deleteTodo(c echo.Context) error {
	if err := s.todos.Delete(c.Request().Context(), authenticatedUserID(c), c.Param("id")); err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(http.StatusOK, msgResponse{Msg: "Deleted"})
}
