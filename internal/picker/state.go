package picker

import (
	"fmt"
	"strings"

	"github.com/anlythree/foodpicker/internal/food"
)

// State is the coarse state of a selection session.
type State int

const (
	// Idle means no food is selected.
	Idle State = iota
	// Showing means a food is selected and the nutrition panel is closed.
	Showing
	// ShowingWithNutrition means a food is selected and the nutrition panel is open.
	ShowingWithNutrition
)

// String returns a lower-case name for the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Showing:
		return "showing"
	case ShowingWithNutrition:
		return "showing_with_nutrition"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Snapshot is a copy of the selection state at one point in time.
type Snapshot struct {
	Selected      *food.Item // nil when nothing is selected
	ShowNutrition bool
}

// State derives the coarse state from the snapshot.
func (s Snapshot) State() State {
	switch {
	case s.Selected == nil:
		return Idle
	case s.ShowNutrition:
		return ShowingWithNutrition
	default:
		return Showing
	}
}

// HasSelection reports whether a food is selected.
func (s Snapshot) HasSelection() bool {
	return s.Selected != nil
}

// SelectedName returns the selected food's name, or "" when idle.
func (s Snapshot) SelectedName() string {
	if s.Selected == nil {
		return ""
	}
	return s.Selected.Name
}

// NutritionPolicy decides what Pick does with an open nutrition panel.
type NutritionPolicy int

const (
	// KeepNutrition leaves the panel as it was when a new food is picked.
	KeepNutrition NutritionPolicy = iota
	// ResetNutrition closes the panel whenever a new food is picked.
	ResetNutrition
)

// String returns the config/flag spelling of the policy.
func (p NutritionPolicy) String() string {
	switch p {
	case KeepNutrition:
		return "keep"
	case ResetNutrition:
		return "reset"
	default:
		return fmt.Sprintf("NutritionPolicy(%d)", int(p))
	}
}

// ParseNutritionPolicy parses "keep" or "reset". An empty string means keep.
func ParseNutritionPolicy(s string) (NutritionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return KeepNutrition, nil
	case "reset":
		return ResetNutrition, nil
	default:
		return KeepNutrition, fmt.Errorf("unknown nutrition policy %q (want keep or reset)", s)
	}
}
