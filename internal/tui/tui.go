// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal monitor of the stock keeper: sync status of
// the active store, alerts, and a server-side filtered record list.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

var ErrNoServices = errors.New("tui: services are required")

type TUI struct {
	services *service.Services
	logger   *logger.Logger

	options []tea.ProgramOption
}

func New(services *service.Services, logger *logger.Logger, options ...tea.ProgramOption) (*TUI, error) {
	if services == nil || services.Session == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, logger: logger, options: options}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	updates, unsubscribe := t.services.Session.Subscribe()
	defer unsubscribe()

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	model := newMonitorModel(ctx, t.services, updates)

	t.logger.Info().Msg("terminal monitor started")
	_, err := tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
