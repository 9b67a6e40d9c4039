package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"intake/internal/application/services"
)

// MaxCreateBookingBody caps POST /api/bookings bodies; every column is VARCHAR(100).
const MaxCreateBookingBody = "8K"

type Server struct {
	e    *echo.Echo
	addr string

	bookingsService *services.BookingService
}

func NewServer(
	e *echo.Echo,
	addr string,
	bookingsService *services.BookingService,
) *Server {
	srv := &Server{
		e:               e,
		addr:            addr,
		bookingsService: bookingsService,
	}

	// logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log.FromContext(c.Request().Context()).
				WithField("method", c.Request().Method).
				WithField("path", c.Request().URL.Path).
				Info("Handling a request")

			err := next(c)

			if err != nil {
				log.FromContext(c.Request().Context()).
					WithField("error", err).
					Error("Request handling error")
			}

			return err
		}
	})

	e.GET("/health", srv.HealthHandler)
	e.POST("/api/bookings", srv.CreateBookingHandler, middleware.BodyLimit(MaxCreateBookingBody))
	e.GET("/api/bookings", srv.ListBookingsHandler)

	return srv
}

func (s *Server) Start() error {
	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// internalError hides the cause from the client; the cause is logged.
func (s *Server) internalError(c echo.Context, err error) error {
	log.FromContext(c.Request().Context()).
		WithField("error", err).
		Error("Request failed")

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
