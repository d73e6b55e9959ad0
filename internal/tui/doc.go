// Package tui is the interactive foodpicker screen, built on Bubble Tea.
//
// The model does not own any selection state. It forwards key presses to a
// picker.Controller and redraws from the snapshots the controller publishes
// to its observers.
//
// # Keys
//
//   - space / enter / n: pick a food ("Tell me", then "Another one")
//   - i: show or hide nutrition (only while a food is shown)
//   - r: reset
//   - ?: expand help
//   - q / ctrl+c: quit
//
// Example:
//
//	ctrl := picker.New(food.Default())
//	if err := tui.Run(ctrl); err != nil {
//	    return err
//	}
package tui
