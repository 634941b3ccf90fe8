// Package tui implements the terminal status screen for the warden admin
// API: database state, version, known batches, and the upgrade, cleanup,
// and refresh actions.
package tui

import (
	"context"

	"github.com/MKhiriev/go-db-warden/internal/client"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	client client.AdminClient
}

func New(client client.AdminClient) *TUI {
	return &TUI{client: client}
}

// Run starts the status screen and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newStatusModel(ctx, t.client)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
