package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/golang/mock/gomock"
	"github.com/lithammer/shortuuid/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake/internal/application/services"
	"intake/internal/application/services/mocks"
	domain "intake/internal/domain/bookings"
	"intake/internal/interfaces/events"
	intakeHTTP "intake/internal/interfaces/http"
)

func newTestServer(t *testing.T) (*intakeHTTP.Server, *mocks.MockBookingsRepo, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookingsRepo(ctrl)

	e := commonHTTP.NewEcho()
	srv := intakeHTTP.NewServer(e, ":0", services.NewBookingService(repo, events.NopEventBus{}))

	return srv, repo, e
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Correlation-ID", shortuuid.New())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	_, _, h := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateBooking(t *testing.T) {
	t.Run("created with default service", func(t *testing.T) {
		_, repo, h := newTestServer(t)

		repo.EXPECT().
			CreateBooking(gomock.Any(), domain.Booking{Name: "Ana", Email: "ana@x.com", Service: "tour"}).
			Return(int64(1), nil)

		rec := doRequest(t, h, http.MethodPost, "/api/bookings", `{"name":"Ana","email":"ana@x.com"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":1,"status":"created"}`, rec.Body.String())
	})

	t.Run("explicit service", func(t *testing.T) {
		_, repo, h := newTestServer(t)

		repo.EXPECT().
			CreateBooking(gomock.Any(), domain.Booking{Name: "Ana", Email: "ana@x.com", Service: "kayak"}).
			Return(int64(5), nil)

		rec := doRequest(t, h, http.MethodPost, "/api/bookings", `{"name":"Ana","email":"ana@x.com","service":"kayak"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":5,"status":"created"}`, rec.Body.String())
	})

	t.Run("null service falls back to default", func(t *testing.T) {
		_, repo, h := newTestServer(t)

		repo.EXPECT().
			CreateBooking(gomock.Any(), domain.Booking{Name: "Ana", Email: "ana@x.com", Service: "tour"}).
			Return(int64(2), nil)

		rec := doRequest(t, h, http.MethodPost, "/api/bookings", `{"name":"Ana","email":"ana@x.com","service":null}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("validation failures never reach the store", func(t *testing.T) {
		bodies := []string{
			`{"email":"x@x.com"}`,
			`{"name":"Ana"}`,
			`{"name":"","email":"x@x.com"}`,
			`{"name":"Ana","email":""}`,
			`{}`,
			`null`,
			`[]`,
			`not json`,
			``,
			`{"name":42,"email":"x@x.com"}`,
			`{"NAME":"Ana","Email":"ana@x.com"}`,
			`{"Name":"Ana","email":"ana@x.com"}`,
			`{"name":"Ana","EMAIL":"ana@x.com"}`,
			`{"name":"Ana","email":["ana@x.com"]}`,
		}

		for _, body := range bodies {
			_, _, h := newTestServer(t)

			rec := doRequest(t, h, http.MethodPost, "/api/bookings", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %q", body)
			assert.JSONEq(t, `{"error":"name and email required"}`, rec.Body.String(), "body: %q", body)
		}
	})

	t.Run("non-string service is kept as its JSON text", func(t *testing.T) {
		cases := map[string]string{
			`{"name":"Ana","email":"ana@x.com","service":5}`:    "5",
			`{"name":"Ana","email":"ana@x.com","service":true}`: "true",
			`{"name":"Ana","email":"ana@x.com","service":""}`:   "",
		}

		for body, service := range cases {
			_, repo, h := newTestServer(t)

			repo.EXPECT().
				CreateBooking(gomock.Any(), domain.Booking{Name: "Ana", Email: "ana@x.com", Service: service}).
				Return(int64(4), nil)

			rec := doRequest(t, h, http.MethodPost, "/api/bookings", body)

			assert.Equal(t, http.StatusCreated, rec.Code, "body: %q", body)
			assert.JSONEq(t, `{"id":4,"status":"created"}`, rec.Body.String(), "body: %q", body)
		}
	})

	t.Run("oversized body is rejected before the store", func(t *testing.T) {
		_, _, h := newTestServer(t)

		body := `{"name":"Ana","email":"ana@x.com","service":"` + strings.Repeat("x", 16*1024) + `"}`
		rec := doRequest(t, h, http.MethodPost, "/api/bookings", body)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		_, repo, h := newTestServer(t)

		repo.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(int64(0), &domain.StorageError{Op: "create booking", Err: errors.New("connection refused")})

		rec := doRequest(t, h, http.MethodPost, "/api/bookings", `{"name":"Ana","email":"ana@x.com"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestListBookings(t *testing.T) {
	t.Run("omits time and keeps store order", func(t *testing.T) {
		_, repo, h := newTestServer(t)

		repo.EXPECT().
			ListRecentBookings(gomock.Any(), domain.DefaultListLimit).
			Return([]domain.Booking{
				{Id: 2, Name: "Bo", Email: "bo@x.com", Service: "kayak"},
				{Id: 1, Name: "Ana", Email: "ana@x.com", Service: "tour"},
			}, nil)

		rec := doRequest(t, h, http.MethodGet, "/api/bookings", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[
			{"id":2,"name":"Bo","email":"bo@x.com","service":"kayak"},
			{"id":1,"name":"Ana","email":"ana@x.com","service":"tour"}
		]`, rec.Body.String())
	})

	t.Run("empty store", func(t *testing.T) {
		_, repo, h := newTestServer(t)

		repo.EXPECT().ListRecentBookings(gomock.Any(), gomock.Any()).Return([]domain.Booking{}, nil)

		rec := doRequest(t, h, http.MethodGet, "/api/bookings", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		_, repo, h := newTestServer(t)

		repo.EXPECT().
			ListRecentBookings(gomock.Any(), gomock.Any()).
			Return(nil, &domain.StorageError{Op: "list bookings", Err: errors.New("timeout")})

		rec := doRequest(t, h, http.MethodGet, "/api/bookings", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
