// Package ui renders foodpicker output with Lipgloss.
//
// The components here are static renderers: they turn a food item, a catalog
// or an error into a styled string. The interactive screen in package tui and
// the one-shot commands (list, pick) share them so both look alike.
//
// # Components
//
//   - Header: command banner with title and parameters
//   - Food card: emoji, name and calorie line for the selected food
//   - Nutrition table: protein, fat and carbohydrate grid
//   - Catalog table: every food with its nutrition values
//   - Error box: failure message with troubleshooting tips
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Pick", "foodpicker pick", map[string]string{"Count": "3"})
//	p.Println(ui.RenderFoodCard(item, true, p.Width()))
package ui
