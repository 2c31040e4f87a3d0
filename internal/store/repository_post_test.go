// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-press-sync/internal/logger"
)

func newTestDB(t *testing.T, driverName string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewDB(conn, driverName, "wp_", logger.Nop()), mock
}

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, DriverMySQL)
	return &postRepository{DB: db, logger: logger.Nop()}, mock
}

// ── CountByType ──────────────────────────────────────────────────────────────

func TestPostRepository_CountByType_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM wp_posts WHERE post_type = ?")).
		WithArgs("page").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(15))

	total, err := repo.CountByType(context.Background(), "page")
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CountByType_RetryableError(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found"})

	_, err := repo.CountByType(context.Background(), "post")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrRetryable)
}

func TestPostRepository_CountByType_NonRetryableError(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnError(&mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"})

	_, err := repo.CountByType(context.Background(), "post")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrRetryable)
}

// ── FindPage ─────────────────────────────────────────────────────────────────

func TestPostRepository_FindPage_OrderAndOffset(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	rows := sqlmock.NewRows([]string{"ID", "post_title", "post_content", "post_parent", "post_type"}).
		AddRow(int64(11), []byte("Hello"), []byte("<p>body</p>"), int64(0), []byte("post")).
		AddRow(int64(12), []byte("Child"), nil, int64(11), []byte("post"))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM wp_posts WHERE post_type = ? ORDER BY post_parent ASC, ID ASC LIMIT 10 OFFSET 10",
	)).
		WithArgs("post").
		WillReturnRows(rows)

	posts, err := repo.FindPage(context.Background(), "post", 10, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, int64(11), posts[0]["ID"])
	assert.Equal(t, "Hello", posts[0]["post_title"], "byte columns are converted to strings")
	assert.Equal(t, "<p>body</p>", posts[0]["post_content"])
	assert.Nil(t, posts[1]["post_content"])
	assert.Equal(t, int64(11), posts[1]["post_parent"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_FindPage_Empty(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("SELECT \\* FROM wp_posts").
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))

	posts, err := repo.FindPage(context.Background(), "post", 10, 100)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_FindPage_RowError(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	rows := sqlmock.NewRows([]string{"ID"}).
		AddRow(int64(1)).
		RowError(0, errors.New("connection reset"))
	mock.ExpectQuery("SELECT \\* FROM wp_posts").WillReturnRows(rows)

	_, err := repo.FindPage(context.Background(), "post", 10, 0)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestPostRepository_FindPage_TransientErrorIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"deadlock", &mysql.MySQLError{Number: 1213, Message: "Deadlock found"}},
		{"invalid connection", mysql.ErrInvalidConn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostRepo(t)

			mock.ExpectQuery("SELECT \\* FROM wp_posts").WillReturnError(tt.err)

			_, err := repo.FindPage(context.Background(), "post", 10, 0)
			assert.ErrorIs(t, err, ErrRetryable)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_FindPage_PostgresPlaceholders(t *testing.T) {
	db, mock := newTestDB(t, DriverPostgres)
	repo := &postRepository{DB: db, logger: logger.Nop()}

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM wp_posts WHERE post_type = $1 ORDER BY post_parent ASC, "ID" ASC LIMIT 10 OFFSET 0`,
	)).
		WithArgs("page").
		WillReturnRows(sqlmock.NewRows([]string{"ID"}).AddRow(int64(3)))

	posts, err := repo.FindPage(context.Background(), "page", 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

// ── FindByID ─────────────────────────────────────────────────────────────────

func TestPostRepository_FindByID(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM wp_posts WHERE ID = ? LIMIT 1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"ID", "post_type", "guid"}).
			AddRow(int64(7), "attachment", "https://origin.example/wp-content/uploads/a.jpg"))

	post, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "attachment", post["post_type"])
}

func TestPostRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("SELECT \\* FROM wp_posts WHERE ID").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))

	_, err := repo.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── FindMeta ─────────────────────────────────────────────────────────────────

func TestPostRepository_FindMeta_GroupsValues(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	rows := sqlmock.NewRows([]string{"meta_key", "meta_value"}).
		AddRow("_thumbnail_id", "7").
		AddRow("color", "red").
		AddRow("color", "blue").
		AddRow("empty", nil)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT meta_key, meta_value FROM wp_postmeta WHERE post_id = ? ORDER BY meta_id ASC",
	)).
		WithArgs(int64(11)).
		WillReturnRows(rows)

	meta, err := repo.FindMeta(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"_thumbnail_id": {"7"},
		"color":         {"red", "blue"},
		"empty":         {""},
	}, meta)
}
