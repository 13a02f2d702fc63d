package database_test

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/grandeurhq/form-service/internal/database"
)

func TestOpenRejectsMalformedURL(t *testing.T) {
	_, err := database.Open("not a dsn")
	require.Error(t, err)
	require.Contains(t, err.Error(), "DATABASE_URL")
}

func TestPingReflectsConnectionHealth(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := database.NewStore(db)

	mock.ExpectPing()
	require.NoError(t, store.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("server has gone away"))
	require.Error(t, store.Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
