// Package config holds the window settings shared by the example programs.
//
// Every program runs without a config file. When the GLDEMO_CONFIG
// environment variable names a YAML file, the fields it sets override the
// program defaults:
//
//	window:
//	  width: 1024
//	  height: 768
//	clear_color: [0, 0, 0, 1]
//	swap_interval: 0
package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "GLDEMO_CONFIG"

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Aspect returns width/height of the initial window.
func (w Window) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}

type Config struct {
	Window     Window     `yaml:"window"`
	ClearColor [4]float32 `yaml:"clear_color"`
	// SwapInterval is the number of screen refreshes to wait for on each
	// buffer swap. 1 waits for vertical sync.
	SwapInterval int `yaml:"swap_interval"`
}

// Default returns the settings of the original programs: an 800x600 window
// cleared to dark teal.
func Default(title string) Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  title,
		},
		ClearColor:   [4]float32{0.2, 0.3, 0.3, 1.0},
		SwapInterval: 1,
	}
}

// Parse overrides the fields of base that are present in the YAML blob.
func Parse(base Config, b []byte) (Config, error) {
	c := base
	if err := yaml.Unmarshal(b, &c); err != nil {
		return base, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.validate(); err != nil {
		return base, err
	}
	return c, nil
}

// Load returns the defaults for title, overridden by the file named in
// GLDEMO_CONFIG if it is set.
func Load(title string) (Config, error) {
	c := Default(title)
	path := os.Getenv(EnvVar)
	if path == "" {
		return c, nil
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	return Parse(c, b)
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.SwapInterval < 0 {
		return fmt.Errorf("invalid swap interval %d", c.SwapInterval)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("clear color component %d out of range: %v", i, v)
		}
	}
	return nil
}
