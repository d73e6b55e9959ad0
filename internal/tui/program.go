package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/anlythree/foodpicker/internal/logging"
	"github.com/anlythree/foodpicker/internal/picker"
)

// Run starts the interactive picker and blocks until the user quits.
func Run(ctrl *picker.Controller, opts ...tea.ProgramOption) error {
	model := NewModel(ctrl)
	defer model.Close()

	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}

	logging.Info("Session started",
		zap.Int("catalog_items", ctrl.Catalog().Len()),
		zap.String("nutrition_policy", ctrl.Policy().String()),
	)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("picker screen failed: %w", err)
	}

	if m, ok := final.(Model); ok {
		logging.Info("Session ended",
			zap.Int("state_changes", m.Revision()),
			zap.String("last_selected", m.Snapshot().SelectedName()),
		)
	}
	return nil
}
