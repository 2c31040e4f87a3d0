// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive front end of the migration driver: a
// bubbletea program showing a progress bar while pages are synced.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/models"
)

// ErrUserQuit is returned when the program exits before the migration
// reported its result.
var ErrUserQuit = errors.New("user quit")

// RunFunc runs the migration, calling onPage after every synced page.
type RunFunc func(ctx context.Context, onPage func(models.SyncProgress)) error

type TUI struct {
	title string

	logger *logger.Logger
}

func New(buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		title:  renderBuildInfoLine(buildInfo),
		logger: logger,
	}
}

// RunMigration runs fn on its own goroutine and renders its progress until
// the user leaves the final screen. It returns the error of fn.
func (t *TUI) RunMigration(ctx context.Context, target string, fn RunFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newMigrationModel(t.title, target, cancel), tea.WithAltScreen())

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		err := fn(ctx, func(p models.SyncProgress) {
			program.Send(pageSyncedMsg{progress: p})
		})
		program.Send(migrationDoneMsg{err: err})
	}()

	finalModel, err := program.Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.RunMigration").Msg("progress UI failed")
		cancel()
		<-finished
		return err
	}

	result, ok := finalModel.(migrationModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if !result.done {
		return ErrUserQuit
	}

	return result.err
}
