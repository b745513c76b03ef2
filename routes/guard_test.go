package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staynest-server/storage"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/kataras/iris/v12"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openMockDB swaps storage.DB for a GORM handle backed by sqlmock so handler
// paths that hit the database can run without Postgres.
func openMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open gorm over sqlmock: %v", err)
	}

	prev := storage.DB
	storage.DB = db
	t.Cleanup(func() {
		storage.DB = prev
		conn.Close()
	})
	return mock
}

// setUser stands in for the access token middleware.
func setUser(id uint) iris.Handler {
	return func(ctx iris.Context) {
		ctx.Values().Set("userID", id)
		ctx.Next()
	}
}

func serveJSON(t *testing.T, app *iris.Application, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	if err := app.Build(); err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestCreateBookingOverlapQueryFailure(t *testing.T) {
	mock := openMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "properties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "max_guests", "price_per_night"}).
			AddRow(1, 99, 4, 120.0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnError(errors.New("connection reset by peer"))

	app := iris.New()
	app.Post("/api/bookings", setUser(7), CreateBooking)

	resp := serveJSON(t, app, http.MethodPost, "/api/bookings",
		`{"propertyID":1,"startDate":"2026-09-10","endDate":"2026-09-12","numGuests":2}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the overlap check fails, got %d", resp.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeletePropertyBookingCountFailure(t *testing.T) {
	mock := openMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "properties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}).AddRow(3, 7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnError(errors.New("connection reset by peer"))

	app := iris.New()
	app.Delete("/api/properties/{id:uint}", setUser(7), DeleteProperty)

	resp := serveJSON(t, app, http.MethodDelete, "/api/properties/3", "")
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the booking count fails, got %d", resp.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeletePaymentMethodUsageCountFailure(t *testing.T) {
	mock := openMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "payment_methods"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(5, 7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments"`).
		WillReturnError(errors.New("connection reset by peer"))

	app := iris.New()
	app.Delete("/api/payments/methods/{id:uint}", setUser(7), DeletePaymentMethod)

	resp := serveJSON(t, app, http.MethodDelete, "/api/payments/methods/5", "")
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the usage count fails, got %d", resp.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
