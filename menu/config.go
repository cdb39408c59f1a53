package menu

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the optional menu configuration file.
//
//	title  = "Patterns"
//	prompt = "> "
type Config struct {
	Title  string `toml:"title"`
	Prompt string `toml:"prompt"`
}

// LoadConfig reads a TOML config file. Unknown keys are rejected so typos
// do not pass silently.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("menu: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("menu: load config %s: unknown keys %v", path, undecoded)
	}
	return &cfg, nil
}

// Options turns the non-empty settings into menu options.
func (c *Config) Options() []Option {
	if c == nil {
		return nil
	}
	var opts []Option
	if c.Title != "" {
		opts = append(opts, Title(c.Title))
	}
	if c.Prompt != "" {
		opts = append(opts, Prompt(c.Prompt))
	}
	return opts
}
