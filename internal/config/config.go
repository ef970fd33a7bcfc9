// Package config loads the compiler's optional project-level
// configuration file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/elioetibr/haml-go/pkg/format"
)

// Config holds the settings a .haml-go.yaml file may override.
type Config struct {
	Format string `yaml:"format"`
	Indent int    `yaml:"indent"`
}

// Default returns the built-in configuration: html5 output, two-space
// indentation.
func Default() Config {
	return Config{Format: "html5", Indent: 2}
}

// candidateNames lists the files Load checks for, in order.
var candidateNames = []string{".haml-go.yaml", ".haml-go.yml"}

// Load reads the first of .haml-go.yaml / .haml-go.yml it finds in
// dir, overlaying it onto the default configuration. A missing file
// is not an error; Load returns the defaults unchanged.
func Load(dir string) (Config, error) {
	cfg := Default()
	for _, name := range candidateNames {
		path := dir + string(os.PathSeparator) + name
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, errors.Wrapf(err, "read %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse %s", path)
		}
		return cfg, nil
	}
	return cfg, nil
}

// ResolveFormat maps a configuration format name to format.Format,
// falling back to format.HTML5 for an unrecognised or empty name.
func ResolveFormat(name string) format.Format {
	switch name {
	case "html4":
		return format.HTML4
	case "xhtml", "xhtml1transitional":
		return format.XHTML1Transitional
	case "xhtml1strict":
		return format.XHTML1Strict
	default:
		return format.HTML5
	}
}
