// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-press-sync/internal/workers"
	"github.com/MKhiriev/go-press-sync/models"
)

const progressWidth = 48

// migrationModel renders the progress of a running PageDriver. The driver
// reports through pageSyncedMsg and migrationDoneMsg; the model never calls
// it. Quitting while a page is in flight requests a stop and waits for the
// driver to return.
type migrationModel struct {
	title  string
	target string
	stop   func()

	bar     progress.Model
	spinner spinner.Model

	last   models.SyncProgress
	pages  int
	sent   int
	failed int

	stopping bool
	done     bool
	quitting bool
	err      error
}

func newMigrationModel(title, target string, stop func()) migrationModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return migrationModel{
		title:   title,
		target:  target,
		stop:    stop,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		spinner: s,
	}
}

func (m migrationModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case pageSyncedMsg:
		m.last = msg.progress
		m.pages++
		m.sent += msg.progress.Sent
		m.failed += msg.progress.Failed
		return m, nil

	case migrationDoneMsg:
		m.done = true
		m.err = msg.err
		if m.stopping {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = min(progressWidth, max(10, msg.Width-8))
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m migrationModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.done && (key.Matches(msg, keys.quit) || key.Matches(msg, keys.enter)):
		m.quitting = true
		return m, tea.Quit

	case !m.done && key.Matches(msg, keys.quit):
		if !m.stopping {
			m.stopping = true
			m.stop()
		}
		return m, nil
	}

	return m, nil
}

// percent is the share of processed objects, clamped to [0, 1]. An empty
// kind counts as complete once the driver is done.
func (m migrationModel) percent() float64 {
	if m.last.TotalObjects <= 0 {
		if m.done && m.err == nil {
			return 1
		}
		return 0
	}

	p := float64(m.last.TotalObjectsProcessed) / float64(m.last.TotalObjects)
	return min(1, max(0, p))
}

func (m migrationModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	label := m.last.Label
	if label == "" {
		label = "objects"
	}

	b.WriteString(fmt.Sprintf("Target: %s\n\n", valueOrNA(m.target)))
	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString("\n\n")
	b.WriteString(statBoxStyle.Render(fmt.Sprintf(
		"%s: %d of %d processed\npage %d | sent %d | failed %d",
		label, m.last.TotalObjectsProcessed, m.last.TotalObjects, m.last.Page, m.sent, m.failed,
	)))
	b.WriteString("\n\n")

	var hotKeys string
	switch {
	case m.done && m.err != nil && !errors.Is(m.err, workers.ErrStopped):
		b.WriteString(errorStyle.Render("Migration failed: " + humanizeError(m.err)))
		hotKeys = "enter/q: exit"
	case m.done && m.err != nil:
		b.WriteString(humanizeError(m.err))
		hotKeys = "enter/q: exit"
	case m.done:
		b.WriteString(successStyle.Render(fmt.Sprintf("Migration finished after %d pages", m.pages)))
		hotKeys = "enter/q: exit"
	case m.stopping:
		b.WriteString(m.spinner.View() + " Stopping after the current page...")
	default:
		b.WriteString(m.spinner.View() + fmt.Sprintf(" Syncing page %d...", m.last.Page+1))
		hotKeys = "q: stop after the current page"
	}

	return renderPage(m.title, b.String(), hotKeys)
}
