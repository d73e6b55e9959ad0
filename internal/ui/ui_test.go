package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/anlythree/foodpicker/internal/food"
)

var hotPot = food.Item{Name: "Hot Pot", Image: "🍲", Calorie: 233, Carb: 26.5, Fat: 17, Protein: 22}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{10, MinTerminalWidth},
		{MinTerminalWidth, MinTerminalWidth},
		{60, 60},
		{500, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRenderFoodCard(t *testing.T) {
	tests := []struct {
		name          string
		showNutrition bool
		want          []string
		notWant       []string
	}{
		{
			name:    "closed panel",
			want:    []string{"Hot Pot", "233 kcal", Question},
			notWant: []string{"Protein", "26.5 g"},
		},
		{
			name:          "open panel",
			showNutrition: true,
			want:          []string{"Hot Pot", "233 kcal", "Protein", "Fat", "Carbs", "22 g", "17 g", "26.5 g"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderFoodCard(hotPot, tt.showNutrition, 60)
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("card missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("card should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestRenderIdleCard(t *testing.T) {
	out := RenderIdleCard(60)
	if !strings.Contains(out, Question) {
		t.Errorf("idle card missing question:\n%s", out)
	}
}

func TestRenderCatalogTable(t *testing.T) {
	out := RenderCatalogTable(food.Default())
	for _, name := range food.Default().Names() {
		if !strings.Contains(out, name) {
			t.Errorf("catalog table missing %q", name)
		}
	}
	if !strings.Contains(out, "Calories") {
		t.Error("catalog table missing header")
	}
}

func TestRenderFoodLine(t *testing.T) {
	short := RenderFoodLine(hotPot, false)
	if !strings.Contains(short, "Hot Pot") || strings.Contains(short, "protein") {
		t.Errorf("RenderFoodLine(false) = %q", short)
	}
	long := RenderFoodLine(hotPot, true)
	if !strings.Contains(long, "protein 22 g") || !strings.Contains(long, "carbs 26.5 g") {
		t.Errorf("RenderFoodLine(true) = %q", long)
	}
}

func TestHeaderParamsAreSorted(t *testing.T) {
	out := NewHeader("Pick", "foodpicker pick", map[string]string{
		"Seed":  "42",
		"Count": "3",
	}).SetWidth(60).Render()

	if !strings.Contains(out, "PICK") || !strings.Contains(out, "foodpicker pick") {
		t.Errorf("header missing title or command:\n%s", out)
	}
	if strings.Index(out, "Count") > strings.Index(out, "Seed") {
		t.Errorf("params should be sorted:\n%s", out)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(50)

	p.PrintError("Could not load catalog", errors.New("file not found"), []string{"Check --catalog"})

	out := buf.String()
	for _, s := range []string{"FAILED", "Could not load catalog", "file not found", "Check --catalog"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
	if p.Width() != 50 {
		t.Errorf("Width() = %d, want 50", p.Width())
	}
}
