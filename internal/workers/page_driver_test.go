// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/utils"
	"github.com/MKhiriev/go-press-sync/models"
)

// fakeSyncer serves pages of a kind with total objects using the legacy
// progress estimate, so a short last page is followed by an empty one.
type fakeSyncer struct {
	total    int64
	pages    []int
	failPage int
	onCall   func(page int)
	ctxErrs  []error
}

func (f *fakeSyncer) SyncPage(ctx context.Context, kind models.ObjectKind, page int) (models.SyncProgress, error) {
	f.pages = append(f.pages, page)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.onCall != nil {
		f.onCall(page)
	}
	if page == f.failPage {
		return models.SyncProgress{}, errors.New("bad gateway")
	}

	remaining := f.total - int64(page-1)*models.PageSize
	n := int(max(0, min(remaining, models.PageSize)))
	processed := int64(models.PageSize * page)
	if n > 0 {
		processed = int64(n * page)
	}

	return models.SyncProgress{
		Kind:                  kind,
		TotalObjects:          f.total,
		TotalObjectsProcessed: processed,
		ProcessedThisPage:     n,
		Page:                  page,
		NextPage:              page + 1,
		Sent:                  n,
	}, nil
}

func TestPageDriver_RunsUntilDone(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		startPage int
		wantPages []int
	}{
		{"fifteen posts", 15, 1, []int{1, 2, 3}},
		{"exact multiple", 20, 1, []int{1, 2}},
		{"empty kind", 0, 1, []int{1}},
		{"resume from page three", 45, 3, []int{3, 4, 5, 6}},
		{"start page below one", 5, 0, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer := &fakeSyncer{total: tt.total}
			var seen []models.SyncProgress

			d := NewPageDriver(syncer, models.KindPost, tt.startPage, logger.Nop(),
				WithProgress(func(p models.SyncProgress) { seen = append(seen, p) }))

			require.NoError(t, d.Run(context.Background()))
			assert.Equal(t, tt.wantPages, syncer.pages)
			require.Len(t, seen, len(tt.wantPages))
			assert.True(t, seen[len(seen)-1].Done())
		})
	}
}

func TestPageDriver_PageError(t *testing.T) {
	syncer := &fakeSyncer{total: 100, failPage: 2}
	d := NewPageDriver(syncer, models.KindPost, 1, logger.Nop())

	err := d.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync page 2")
	assert.Equal(t, []int{1, 2}, syncer.pages)
}

func TestPageDriver_StopsBetweenPages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	syncer := &fakeSyncer{total: 100}
	syncer.onCall = func(page int) {
		if page == 2 {
			cancel()
		}
	}

	d := NewPageDriver(syncer, models.KindPost, 1, logger.Nop())
	err := d.Run(ctx)

	require.ErrorIs(t, err, ErrStopped)
	// page 2 was in flight when the stop was requested and still completed
	assert.Equal(t, []int{1, 2}, syncer.pages)
	for _, ctxErr := range syncer.ctxErrs {
		assert.NoError(t, ctxErr)
	}
}

func TestPageDriver_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	syncer := &fakeSyncer{total: 100}
	err := NewPageDriver(syncer, models.KindPost, 1, logger.Nop()).Run(ctx)

	require.ErrorIs(t, err, ErrStopped)
	assert.Empty(t, syncer.pages)
}

// traceSyncer records the trace ID carried by each page request.
type traceSyncer struct {
	traceIDs []string
}

func (s *traceSyncer) SyncPage(ctx context.Context, _ models.ObjectKind, page int) (models.SyncProgress, error) {
	traceID, _ := utils.GetTraceIDFromContext(ctx)
	s.traceIDs = append(s.traceIDs, traceID)

	n := 10
	if page == 2 {
		n = 0
	}
	return models.SyncProgress{TotalObjects: 100, TotalObjectsProcessed: int64(10 * page), ProcessedThisPage: n, Page: page, NextPage: page + 1}, nil
}

func TestPageDriver_RunIDIsTraceID(t *testing.T) {
	syncer := &traceSyncer{}

	require.NoError(t, NewPageDriver(syncer, models.KindPage, 1, logger.Nop()).Run(context.Background()))

	require.Len(t, syncer.traceIDs, 2)
	assert.NotEmpty(t, syncer.traceIDs[0])
	assert.Equal(t, syncer.traceIDs[0], syncer.traceIDs[1])
}
