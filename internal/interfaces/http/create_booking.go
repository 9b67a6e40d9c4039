package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"intake/internal/application/services"
	domain "intake/internal/domain/bookings"
)

type CreateBookingRequest struct {
	Name    string
	Email   string
	Service *string
}

type CreateBookingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (s *Server) CreateBookingHandler(c echo.Context) error {
	ctx := c.Request().Context()

	request := decodeCreateBookingRequest(c.Request().Body)

	bookingID, err := s.bookingsService.CreateBooking(ctx,
		services.CreateBookingCommand{
			Name:    request.Name,
			Email:   request.Email,
			Service: request.Service,
		})
	if errors.Is(err, domain.ErrNameAndEmailRequired) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusCreated,
		CreateBookingResponse{
			ID:     bookingID,
			Status: "created",
		},
	)
}

// decodeCreateBookingRequest never fails. A body that is not a JSON object
// counts as an empty one. Keys are matched exactly; a name or email that is
// not a string counts as absent.
func decodeCreateBookingRequest(body io.Reader) CreateBookingRequest {
	payload, err := io.ReadAll(body)
	if err != nil {
		return CreateBookingRequest{}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return CreateBookingRequest{}
	}

	return CreateBookingRequest{
		Name:    stringField(fields, "name"),
		Email:   stringField(fields, "email"),
		Service: serviceField(fields),
	}
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var value string
	if err := json.Unmarshal(fields[key], &value); err != nil {
		return ""
	}
	return value
}

// serviceField returns nil when service is absent or null. Other non-string
// values are kept as their JSON text, the way the column cast stores them.
func serviceField(fields map[string]json.RawMessage) *string {
	raw, ok := fields["service"]
	if !ok || string(raw) == "null" {
		return nil
	}

	var value string
	if err := json.Unmarshal(raw, &value); err == nil {
		return &value
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, raw); err != nil {
		return nil
	}
	value = compacted.String()
	return &value
}
