// Package config provides configuration management for the drawing tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# chartdraw configuration

[geometry]
# Distance a ray is projected past its start point
extension_length = 10000.0
# Samples used for ellipses, circles, arcs and curves
sample_count = 100
# Horizontal clamp of extended lines
extended_min_x = -10000.0
extended_max_x = 10000.0

[cycles]
# Multiplier applied to the anchor span to get one period
period_adjust = 1.0
# Multiplier applied to half the anchor height to get the sine amplitude
amplitude_adjust = 1.0
# Samples per sine projection
sine_points = 100

[freehand]
# Opacity of highlighter strokes, in (0, 1]
highlighter_alpha = 0.3

[logging]
# Log level: debug, info, warn, error
level = "info"
console = true
file = false
# file_path = "/var/log/chartdraw/chartdraw.log"
# Rotation: megabytes per file, files kept, days kept
max_size = 10
max_backups = 3
max_age = 28
`

// Template returns the annotated default configuration file.
func Template() string {
	return configTemplate
}

// WriteTemplate writes the default configuration to path, creating its
// directory. An existing file is left untouched and reported as an error.
func WriteTemplate(path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("config file already exists at %s", path)
		}
		return fmt.Errorf("writing config template: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(Template()); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
