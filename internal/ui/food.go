package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/anlythree/foodpicker/internal/food"
)

// Question is the prompt shown above the selection.
const Question = "What should I eat?"

// IdleImage stands in for the food emoji before anything is picked.
const IdleImage = "🍽️"

// RenderFoodCard renders the selected food: emoji, name, calories and,
// when showNutrition is set, the nutrition table.
func RenderFoodCard(item food.Item, showNutrition bool, width int) string {
	width = ClampWidth(width)

	name := FoodNameStyle.Render(item.Name) + " " + InfoHintStyle.Render(InfoMarker)
	lines := []string{
		FoodImageStyle.Render(item.Image),
		QuestionStyle.Render(Question),
		name,
		CalorieStyle.Render("Calories " + item.CalorieText()),
	}
	if showNutrition {
		lines = append(lines, "", RenderNutritionTable(item))
	}

	return CardBoxStyle(width).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// RenderIdleCard renders the card shown before anything is picked.
func RenderIdleCard(width int) string {
	width = ClampWidth(width)
	content := lipgloss.JoinVertical(lipgloss.Center,
		FoodImageStyle.Render(IdleImage),
		QuestionStyle.Render(Question),
	)
	return CardBoxStyle(width).Render(content)
}

// RenderNutritionTable renders protein, fat and carbohydrate in a grid.
func RenderNutritionTable(item food.Item) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(MutedColor)).
		BorderColumn(false).
		Headers("Protein", "Fat", "Carbs").
		Row(item.ProteinText(), item.FatText(), item.CarbText()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return NutritionHeaderStyle
			}
			return NutritionCellStyle
		})
	return t.Render()
}

// RenderCatalogTable renders every food in the catalog, one per row.
func RenderCatalogTable(c *food.Catalog) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(PrimaryColor)).
		Headers("#", "", "Name", "Calories", "Protein", "Fat", "Carbs").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return NutritionHeaderStyle
			}
			if col == 2 {
				return FoodNameStyle.Padding(0, 1)
			}
			return NutritionCellStyle
		})

	for i, item := range c.List() {
		t.Row(
			fmt.Sprintf("%d", i+1),
			item.Image,
			item.Name,
			item.CalorieText(),
			item.ProteinText(),
			item.FatText(),
			item.CarbText(),
		)
	}
	return t.Render()
}

// RenderFoodLine renders a single-line summary, used for compact output.
func RenderFoodLine(item food.Item, showNutrition bool) string {
	var b strings.Builder
	b.WriteString(item.Image)
	b.WriteString(" ")
	b.WriteString(FoodNameStyle.Render(item.Name))
	b.WriteString("  ")
	b.WriteString(CalorieStyle.Render(item.CalorieText()))
	if showNutrition {
		fmt.Fprintf(&b, "  protein %s · fat %s · carbs %s",
			item.ProteinText(), item.FatText(), item.CarbText())
	}
	return b.String()
}
