// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-press-sync/internal/logger"
)

func TestConnectionRepository_FindConnections(t *testing.T) {
	db, mock := newTestDB(t, DriverMySQL)
	repo := NewConnectionRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT p2p_from, p2p_to, p2p_type FROM wp_p2p WHERE (p2p_from = ? OR p2p_to = ?) ORDER BY p2p_id ASC",
	)).
		WithArgs(int64(3), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"p2p_from", "p2p_to", "p2p_type"}).
			AddRow(int64(3), int64(9), "posts_to_pages").
			AddRow(int64(12), int64(3), "related"))

	connections, err := repo.FindConnections(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, connections, 2)
	assert.Equal(t, int64(9), connections[0]["p2p_to"])
	assert.Equal(t, "related", connections[1]["p2p_type"])
}
