// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/tui"
)

type App struct {
	ui    Previewer
	args  []string
	paste func() (string, error)
	out   io.Writer

	logger *logger.Logger
}

// NewApp builds the CLI runtime. The first of args is the link; without
// one the clipboard is read.
func NewApp(ui Previewer, args []string, out io.Writer, logger *logger.Logger) *App {
	return &App{
		ui:     ui,
		args:   args,
		paste:  clipboard.ReadAll,
		out:    out,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	rawURL, err := a.link()
	if err != nil {
		return err
	}
	a.logger.Info().Str("func", "*App.Run").Str("host", logger.URLHost(rawURL)).Msg("previewing link")

	result, err := a.ui.Preview(ctx, rawURL)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	_, err = fmt.Fprintln(a.out, result.String())
	return err
}

func (a *App) link() (string, error) {
	if len(a.args) > 0 {
		if s := strings.TrimSpace(a.args[0]); s != "" {
			return s, nil
		}
	}

	pasted, err := a.paste()
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.link").Msg("clipboard read failed")
		return "", ErrNoURL
	}
	if pasted = strings.TrimSpace(pasted); pasted == "" {
		return "", ErrNoURL
	}
	return pasted, nil
}
