package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anlythree/foodpicker/internal/food"
	"github.com/anlythree/foodpicker/internal/picker"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func newTestModel(t *testing.T, catalog *food.Catalog, opts ...picker.Option) (Model, *picker.Controller) {
	t.Helper()
	ctrl := picker.New(catalog, append([]picker.Option{picker.WithSeed(1)}, opts...)...)
	m := NewModel(ctrl)
	t.Cleanup(m.Close)
	return m, ctrl
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestModelStartsIdle(t *testing.T) {
	m, _ := newTestModel(t, food.Default())

	view := m.View()
	if !strings.Contains(view, "What should I eat?") {
		t.Errorf("idle view missing question:\n%s", view)
	}
	if !strings.Contains(view, strings.ToUpper(PickLabelIdle)) {
		t.Errorf("idle view should offer %q:\n%s", PickLabelIdle, view)
	}
	if strings.Contains(view, strings.ToUpper(PickLabelShowing)) {
		t.Errorf("idle view should not offer %q:\n%s", PickLabelShowing, view)
	}
}

func TestPickKeyUpdatesView(t *testing.T) {
	m, ctrl := newTestModel(t, food.Default())

	m = send(m, enter)

	snap := m.Snapshot()
	if snap.Selected == nil {
		t.Fatal("model was not notified of the pick")
	}
	if snap.SelectedName() != ctrl.Snapshot().SelectedName() {
		t.Errorf("model shows %q, controller has %q", snap.SelectedName(), ctrl.Snapshot().SelectedName())
	}

	view := m.View()
	if !strings.Contains(view, snap.Selected.Name) {
		t.Errorf("view missing selected food %q:\n%s", snap.Selected.Name, view)
	}
	if !strings.Contains(view, strings.ToUpper(PickLabelShowing)) {
		t.Errorf("view should offer %q after a pick:\n%s", PickLabelShowing, view)
	}
	if m.Revision() != 1 {
		t.Errorf("Revision() = %d, want 1", m.Revision())
	}
}

func TestToggleAndResetKeys(t *testing.T) {
	m, ctrl := newTestModel(t, food.Default(), picker.WithInitialSelection("Salad"))

	m = send(m, keyRune('i'))
	if ctrl.State() != picker.ShowingWithNutrition {
		t.Fatalf("State() = %v, want showing_with_nutrition", ctrl.State())
	}
	if !strings.Contains(m.View(), "Protein") {
		t.Errorf("nutrition table not rendered:\n%s", m.View())
	}

	m = send(m, keyRune('r'))
	if ctrl.State() != picker.Idle {
		t.Fatalf("State() = %v, want idle", ctrl.State())
	}
	if m.Snapshot().ShowNutrition || m.Snapshot().Selected != nil {
		t.Errorf("model snapshot after reset = %+v", m.Snapshot())
	}
}

func TestToggleKeyIgnoredWhileIdle(t *testing.T) {
	m, ctrl := newTestModel(t, food.Default())

	m = send(m, keyRune('i'))
	if ctrl.State() != picker.Idle {
		t.Errorf("State() = %v, want idle", ctrl.State())
	}
	if m.Revision() != 0 {
		t.Errorf("Revision() = %d, want 0 for a disabled key", m.Revision())
	}

	m = send(m, keyRune('r'))
	if m.Revision() != 1 || ctrl.State() != picker.Idle {
		t.Errorf("reset while idle: Revision() = %d, State() = %v", m.Revision(), ctrl.State())
	}
}

func TestPickErrorIsShown(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = send(m, enter)
	if !errors.Is(m.LastError, picker.ErrEmptyCatalog) {
		t.Fatalf("LastError = %v, want ErrEmptyCatalog", m.LastError)
	}
	if !strings.Contains(m.View(), picker.ErrEmptyCatalog.Error()) {
		t.Errorf("view should show the error:\n%s", m.View())
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, food.Default())

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q should quit, got %T", cmd())
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, food.Default())

	m = send(m, keyRune('?'))
	if !m.Help.ShowAll {
		t.Error("? should expand help")
	}
	m = send(m, keyRune('?'))
	if m.Help.ShowAll {
		t.Error("second ? should collapse help")
	}
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestModel(t, food.Default())

	m = send(m, tea.WindowSizeMsg{Width: 50, Height: 30})
	if m.Width != 50 || m.Height != 30 {
		t.Errorf("size = %dx%d, want 50x30", m.Width, m.Height)
	}
}

func TestCloseStopsNotifications(t *testing.T) {
	ctrl := picker.New(food.Default(), picker.WithSeed(2))
	m := NewModel(ctrl)

	m.Close()
	_, _ = ctrl.Pick()
	if m.Revision() != 0 {
		t.Errorf("Revision() = %d after Close, want 0", m.Revision())
	}
}

func TestKeyMapForState(t *testing.T) {
	item := food.Item{Name: "Oden", Image: "🍢"}
	keys := newKeyMap()

	idle := keys.forState(picker.Snapshot{})
	if idle.Toggle.Enabled() {
		t.Error("toggle should be disabled while idle")
	}
	if !idle.Reset.Enabled() {
		t.Error("reset should stay available while idle")
	}
	if idle.Pick.Help().Desc != PickLabelIdle {
		t.Errorf("idle pick label = %q", idle.Pick.Help().Desc)
	}

	showing := keys.forState(picker.Snapshot{Selected: &item, ShowNutrition: true})
	if !showing.Toggle.Enabled() || showing.Toggle.Help().Desc != "hide nutrition" {
		t.Errorf("toggle while showing nutrition = %v %q", showing.Toggle.Enabled(), showing.Toggle.Help().Desc)
	}
	if showing.Pick.Help().Desc != PickLabelShowing {
		t.Errorf("showing pick label = %q", showing.Pick.Help().Desc)
	}

	if !keys.Toggle.Enabled() {
		t.Error("forState should not modify the receiver")
	}
}
