package handler_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/grandeurhq/form-service/internal/config"
	"github.com/grandeurhq/form-service/internal/database"
	"github.com/grandeurhq/form-service/internal/handler"
	"github.com/grandeurhq/form-service/internal/queue"
	"github.com/grandeurhq/form-service/internal/repository"
	"github.com/grandeurhq/form-service/internal/router"
)

// newServer wires the full HTTP surface against a mocked connection pool.
// Pass monitorPings to tests that assert on health probes.
func newServer(t *testing.T, monitorPings bool) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(monitorPings))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := database.NewStore(db)
	form := handler.NewFormHandler(repository.NewSubmissionRepo(store), queue.NewPublisher(""))
	health := handler.NewHealthHandler(store)
	cors := config.CORSConfig{AllowOrigins: []string{"*"}, AllowCredentials: true}
	return router.New(cors, form, health), mock
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitPersistsAndResponds(t *testing.T) {
	e, mock := newServer(t, false)
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO grandeur").
		WithArgs("Ada Lovelace", "ada@example.com", "5551234567").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT id, name, email, phone_number, created_at FROM grandeur").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone_number", "created_at"}).
			AddRow(7, "Ada Lovelace", "ada@example.com", "5551234567", created))
	mock.ExpectCommit()

	rec := do(t, e, http.MethodPost, "/submit-form", `{"name":"Ada Lovelace","email":"ada@example.com","number":"5551234567"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"message":"Form submitted successfully!","record_id":7}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitTrimsSurroundingWhitespace(t *testing.T) {
	e, mock := newServer(t, false)
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO grandeur").
		WithArgs("Ada Lovelace", "ada@example.com", "5551234567").
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectQuery("SELECT id, name, email, phone_number, created_at FROM grandeur").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone_number", "created_at"}).
			AddRow(8, "Ada Lovelace", "ada@example.com", "5551234567", created))
	mock.ExpectCommit()

	rec := do(t, e, http.MethodPost, "/submit-form", `{"name":"  Ada Lovelace  ","email":" ada@example.com ","number":" 5551234567 "}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"message":"Form submitted successfully!","record_id":8}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitRejectsInvalidPayloads(t *testing.T) {
	var cases = []struct {
		name   string
		body   string
		detail string
	}{
		{
			name:   "empty name",
			body:   `{"name":"","email":"ada@example.com","number":"5551234567"}`,
			detail: `[{"field":"name","message":"is required"}]`,
		},
		{
			name:   "whitespace-only name",
			body:   `{"name":"   ","email":"ada@example.com","number":"5551234567"}`,
			detail: `[{"field":"name","message":"is required"}]`,
		},
		{
			name:   "invalid email",
			body:   `{"name":"Bob","email":"not-an-email","number":"5551234567"}`,
			detail: `[{"field":"email","message":"must be a valid email address"}]`,
		},
		{
			name:   "number too short",
			body:   `{"name":"Bob","email":"bob@example.com","number":"12345"}`,
			detail: `[{"field":"number","message":"must be exactly 10 digits"}]`,
		},
		{
			name:   "number with letters",
			body:   `{"name":"Bob","email":"bob@example.com","number":"555123456a"}`,
			detail: `[{"field":"number","message":"must contain only decimal digits"}]`,
		},
		{
			name: "empty object",
			body: `{}`,
			detail: `[{"field":"name","message":"is required"},` +
				`{"field":"email","message":"is required"},` +
				`{"field":"number","message":"is required"}]`,
		},
		{
			name:   "malformed json",
			body:   `{"name":`,
			detail: `[{"field":"body","message":"must be a valid JSON object"}]`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// No expectations are queued: rejected input must never reach
			// the pool, and ExpectationsWereMet would fail if it did.
			e, mock := newServer(t, false)
			rec := do(t, e, http.MethodPost, "/submit-form", tc.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			require.JSONEq(t, `{"detail":`+tc.detail+`}`, rec.Body.String())
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubmitReportsDatabaseFailure(t *testing.T) {
	e, mock := newServer(t, false)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO grandeur").
		WithArgs("Ada Lovelace", "ada@example.com", "5551234567").
		WillReturnError(errors.New("Error 1114: The table 'grandeur' is full"))
	mock.ExpectRollback()

	rec := do(t, e, http.MethodPost, "/submit-form", `{"name":"Ada Lovelace","email":"ada@example.com","number":"5551234567"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"detail":"Database error occurred while submitting the form"}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
