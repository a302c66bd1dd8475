// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders a link preview in the terminal and lets the user
// encrypt its image into an artifact.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/service"
	"github.com/MKhiriev/go-safe-preview/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Result is what the session ended with. Metadata is nil when the link had
// no preview; Artifact is nil unless the user encrypted the image.
type Result struct {
	Metadata *models.LinkMetadata
	Artifact *models.Artifact
}

// String is the one-line summary printed after the session.
func (r Result) String() string {
	if r.Metadata == nil {
		return "no preview"
	}
	s := valueOrDash(r.Metadata.Title)
	if r.Artifact != nil {
		s += fmt.Sprintf(" (encrypted: %s)", r.Artifact.Ref)
	}
	return s
}

// Preview runs the interactive preview for rawURL until the user quits.
// Quitting before the preview loaded yields [ErrUserQuit].
func (t *TUI) Preview(ctx context.Context, rawURL string) (Result, error) {
	model := newPreviewModel(ctx, t.services, rawURL)
	finalModel, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return Result{}, err
	}

	result, ok := finalModel.(previewModel)
	if !ok {
		return Result{}, tea.ErrProgramKilled
	}

	t.logger.Debug().Str("func", "*TUI.Preview").
		Bool("has_preview", result.metadata != nil).
		Bool("encrypted", result.artifact != nil).
		Msg("preview session finished")

	res := Result{Metadata: result.metadata, Artifact: result.artifact}
	if result.aborted {
		return res, ErrUserQuit
	}
	return res, nil
}
