package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BookingResponse deliberately has no time field.
type BookingResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
}

func (s *Server) ListBookingsHandler(c echo.Context) error {
	bookings, err := s.bookingsService.ListBookings(c.Request().Context())
	if err != nil {
		return s.internalError(c, err)
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, BookingResponse{
			ID:      b.Id,
			Name:    b.Name,
			Email:   b.Email,
			Service: b.Service,
		})
	}

	return c.JSON(http.StatusOK, response)
}
