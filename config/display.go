package config

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed display.yaml
var configFS embed.FS

const displayFile = "display.yaml"

// Display is the window configuration, read once at startup.
type Display struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DefaultDisplay fills fields the file leaves unset.
var DefaultDisplay = Display{
	Title:  "batflight",
	Width:  800,
	Height: 600,
}

// LoadDisplay reads the display configuration. A disk copy under config/
// overrides the embedded one.
func LoadDisplay() (Display, error) {
	data, err := readFile(displayFile)
	if err != nil {
		return Display{}, errors.Wrapf(err, "read display config %s", displayFile)
	}
	return parseDisplay(data)
}

func parseDisplay(data []byte) (Display, error) {
	d := DefaultDisplay
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Display{}, errors.Wrapf(err, "parse display config %s", displayFile)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return Display{}, errors.Errorf("display config: window size %dx%d must be positive", d.Width, d.Height)
	}
	if d.Title == "" {
		d.Title = DefaultDisplay.Title
	}
	return d, nil
}

func readFile(name string) ([]byte, error) {
	if b, err := os.ReadFile(filepath.Join("config", name)); err == nil {
		return b, nil
	}
	return configFS.ReadFile(name)
}
