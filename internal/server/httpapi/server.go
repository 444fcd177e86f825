// Package httpapi exposes the JSON HTTP surface of the server: credential
// endpoints, token-guarded todo CRUD, and a health probe.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/logging"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// UserService is the slice of the user service the transport needs.
type UserService interface {
	Register(ctx context.Context, displayName, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// TodoService is the slice of the todo service the transport needs.
type TodoService interface {
	List(ctx context.Context, userID string) ([]*models.Todo, error)
	Create(ctx context.Context, userID, title string) (*models.Todo, error)
	Update(ctx context.Context, userID, todoID string, patch services.TodoPatch) (*models.Todo, error)
	Delete(ctx context.Context, userID, todoID string) error
}

const shutdownGracePeriod = 5 * time.Second

// Server hosts the echo engine and its dependencies.
type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	todos     TodoService
	jwtSecret []byte
	echo      *echo.Echo
}

// NewServer builds the echo engine and registers all routes.
func NewServer(address string, l logging.Logger, us UserService, ts TodoService, secretKey string) *Server {
	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		todos:     ts,
		jwtSecret: []byte(secretKey),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	e.GET("/healthz", s.health)

	authLimiter := newRateLimiter(rate.Limit(5), 10)
	authGroup := e.Group("/api/auth", authLimiter.middleware())
	authGroup.POST("/register", s.register)
	authGroup.POST("/login", s.login)

	todoGroup := e.Group("/api/todos", s.requireAuth)
	todoGroup.GET("", s.listTodos)
	todoGroup.POST("", s.createTodo)
	todoGroup.PUT("/:id", s.updateTodo)
	todoGroup.DELETE("/:id", s.deleteTodo)

	s.echo = e
	return s
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled. In-flight requests get shutdownGracePeriod to finish.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info(c.Request().Context(), "request",
				"method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	})
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
