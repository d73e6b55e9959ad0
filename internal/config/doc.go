// Package config manages the foodpicker settings file.
//
// Settings are stored as YAML in a platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/foodpicker/config.yaml or $HOME/.config/foodpicker/config.yaml
//   - macOS: $HOME/.config/foodpicker/config.yaml
//   - Windows: %LOCALAPPDATA%\foodpicker\config.yaml
//
// A missing file is not an error; defaults are used instead. Command-line
// flags override whatever the file says.
//
// # Example File
//
//	version: 1
//	catalog: /home/me/foods.yaml
//	nutrition_on_pick: keep
//	seed: 0
//	log_level: debug
//	log_file: /tmp/foodpicker.log
//
// # Usage Example
//
//	settings, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	policy, err := settings.Policy()
package config
