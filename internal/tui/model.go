package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anlythree/foodpicker/internal/picker"
	"github.com/anlythree/foodpicker/internal/ui"
)

// observed holds the last snapshot published by the controller. The model is
// copied by value on every Update, so the subscription writes through a
// pointer shared by all copies.
type observed struct {
	snap     picker.Snapshot
	revision int
}

// Model is the Bubble Tea model for the picker screen.
type Model struct {
	ctrl        *picker.Controller
	state       *observed
	unsubscribe func()

	LastError error

	Width  int
	Height int

	Help help.Model
	Keys keyMap
}

// NewModel creates a model bound to ctrl and subscribes to its changes.
// Call Close when the model is no longer used.
func NewModel(ctrl *picker.Controller) Model {
	state := &observed{snap: ctrl.Snapshot()}
	unsubscribe := ctrl.Subscribe(func(s picker.Snapshot) {
		state.snap = s
		state.revision++
	})

	return Model{
		ctrl:        ctrl,
		state:       state,
		unsubscribe: unsubscribe,
		Width:       ui.MaxContentWidth,
		Help:        help.New(),
		Keys:        newKeyMap(),
	}
}

// Close removes the model's controller subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Snapshot returns the last state the model was notified of.
func (m Model) Snapshot() picker.Snapshot {
	return m.state.snap
}

// Revision counts the notifications the model has received.
func (m Model) Revision() int {
	return m.state.revision
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		keys := m.Keys.forState(m.state.snap)

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Pick):
			m.LastError = nil
			if _, err := m.ctrl.Pick(); err != nil {
				m.LastError = err
			}

		case key.Matches(msg, keys.Toggle):
			m.ctrl.ToggleNutrition()

		case key.Matches(msg, keys.Reset):
			m.LastError = nil
			m.ctrl.Reset()

		case key.Matches(msg, keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	width := ui.ClampWidth(m.Width)
	snap := m.state.snap

	var card string
	if snap.Selected == nil {
		card = ui.RenderIdleCard(width)
	} else {
		card = ui.RenderFoodCard(*snap.Selected, snap.ShowNutrition, width)
	}

	sections := []string{card}
	if m.LastError != nil {
		sections = append(sections, ui.ErrorMessageStyle.Render("Error: "+m.LastError.Error()))
	}
	sections = append(sections, renderButtons(snap, width))

	helpText := m.Help.View(m.Keys.forState(snap))
	return renderContainer(strings.Join(sections, "\n\n"), helpText, width)
}

// renderButtons draws the two action labels under the card.
func renderButtons(s picker.Snapshot, width int) string {
	label := PickLabelIdle
	if s.HasSelection() {
		label = PickLabelShowing
	}

	buttons := []string{
		PrimaryButtonStyle.Render(strings.ToUpper(label)),
		SecondaryButtonStyle.Render("RESET"),
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...))
}
