// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-safe-preview/internal/service"
	"github.com/MKhiriev/go-safe-preview/models"
)

type previewState int

const (
	stateLoading previewState = iota
	stateReady
	stateNoPreview
	stateEncrypting
	stateBuildInfo
)

type previewModel struct {
	ctx      context.Context
	services *service.Services
	rawURL   string

	state     previewState
	prevState previewState
	spinner   spinner.Model

	metadata  *models.LinkMetadata
	artifact  *models.Artifact
	buildInfo models.AppBuildInfo
	status    string
	overlay   *errorOverlayModel

	// aborted is set when the user quit before the preview loaded.
	aborted bool
}

func newPreviewModel(ctx context.Context, services *service.Services, rawURL string) previewModel {
	return previewModel{
		ctx:      ctx,
		services: services,
		rawURL:   rawURL,
		state:    stateLoading,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m previewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scrape())
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case previewLoadedMsg:
		if msg.err != nil || msg.metadata == nil {
			m.state = stateNoPreview
			return m, nil
		}
		m.metadata = msg.metadata
		m.state = stateReady
		return m, nil

	case artifactSavedMsg:
		m.state = stateReady
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "could not encrypt the image: " + msg.err.Error()}
			return m, nil
		}
		artifact := msg.artifact
		m.artifact = &artifact
		md := m.metadata.WithEncryptedImage(artifact.Ref)
		m.metadata = &md
		m.status = "encrypted to " + artifact.Path
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "clipboard unavailable"
		} else {
			m.status = "ref copied to clipboard"
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading && m.state != stateEncrypting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m previewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if key.Matches(msg, keys.quit) {
		m.aborted = m.state == stateLoading
		return m, tea.Quit
	}

	switch m.state {
	case stateReady:
		switch {
		case key.Matches(msg, keys.encrypt) && m.canEncrypt():
			m.state = stateEncrypting
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, m.encrypt())
		case key.Matches(msg, keys.copy) && m.artifact != nil:
			return m, copyRef(m.artifact.Ref)
		case key.Matches(msg, keys.info):
			return m.showBuildInfo(), nil
		}

	case stateNoPreview:
		if key.Matches(msg, keys.info) {
			return m.showBuildInfo(), nil
		}

	case stateBuildInfo:
		if key.Matches(msg, keys.esc) {
			m.state = m.prevState
		}
	}

	return m, nil
}

func (m previewModel) showBuildInfo() previewModel {
	m.buildInfo = m.services.AppInfoService.GetBuildInfo(m.ctx)
	m.prevState = m.state
	m.state = stateBuildInfo
	return m
}

// canEncrypt reports whether there is an image to encrypt that was not
// encrypted yet.
func (m previewModel) canEncrypt() bool {
	return m.metadata != nil && m.metadata.HasImage() && m.artifact == nil
}

func (m previewModel) scrape() tea.Cmd {
	ctx, services, rawURL := m.ctx, m.services, m.rawURL
	return func() tea.Msg {
		md, err := services.MetadataService.ScrapeWithPreview(ctx, rawURL)
		return previewLoadedMsg{metadata: md, err: err}
	}
}

// encrypt prefers the preview blob, which is already downloaded, over a
// second fetch of the image URL.
func (m previewModel) encrypt() tea.Cmd {
	ctx, services := m.ctx, m.services
	source := *m.metadata.ImageURL
	if ref := m.metadata.PreviewBlobRef; ref != nil {
		source = *ref
	}
	return func() tea.Msg {
		artifact, err := services.VaultService.EncryptToArtifact(ctx, source)
		return artifactSavedMsg{artifact: artifact, err: err}
	}
}

func copyRef(ref string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(ref)}
	}
}

func (m previewModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	switch m.state {
	case stateLoading:
		return appStyle.Render(m.spinner.View() + " fetching preview...")
	case stateNoPreview:
		return renderPage("NO PREVIEW", "This link has no safe preview.", "v: about")
	case stateBuildInfo:
		return renderBuildInfoWindow(m.buildInfo)
	}

	return renderPage("PREVIEW", m.renderMetadata(), m.hotKeys())
}

func (m previewModel) renderMetadata() string {
	lines := []string{
		field("Title", valueOrDash(m.metadata.Title)),
		field("About", valueOrDash(m.metadata.Description)),
		field("Image", valueOrDash(m.metadata.ImageURL)),
	}
	if m.metadata.PreviewBlobRef != nil {
		lines = append(lines, field("Preview", *m.metadata.PreviewBlobRef))
	}
	if m.artifact != nil {
		lines = append(lines,
			field("Encrypted", m.artifact.Ref),
			field("Scheme", string(m.artifact.Scheme)),
		)
	}

	switch {
	case m.state == stateEncrypting:
		lines = append(lines, "", m.spinner.View()+" encrypting...")
	case m.status != "":
		lines = append(lines, "", statusStyle.Render(m.status))
	}

	return strings.Join(lines, "\n")
}

func (m previewModel) hotKeys() string {
	var parts []string
	if m.canEncrypt() {
		parts = append(parts, "e: encrypt image")
	}
	if m.artifact != nil {
		parts = append(parts, "c: copy ref")
	}
	parts = append(parts, "v: about")
	return strings.Join(parts, "   ")
}
