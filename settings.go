package mandel

import (
	"log"

	"github.com/magiconair/properties"
)

// Built-in render defaults, used whenever the settings file is absent or
// unusable.
const (
	DefaultMaxDepth = 256
	DefaultWidth    = 640
	DefaultHeight   = 480
)

// SettingsFile is the properties file consulted at startup.
const SettingsFile = "mandelthing.properties"

// LoadSettings reads the startup render config from a Java-style properties
// file with keys maxdepth, width and height. Settings trouble is never
// fatal: a missing or malformed file, an unparsable value or an
// out-of-range value each just keep that key's default, logged.
func LoadSettings(path string) RenderConfig {
	cfg := RenderConfig{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxDepth: DefaultMaxDepth,
	}

	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
		return cfg
	}

	if d := p.GetInt("maxdepth", DefaultMaxDepth); d >= 2 {
		cfg.MaxDepth = d
	} else {
		log.Printf("settings: maxdepth %d out of range, using %d", d, DefaultMaxDepth)
	}
	if w := p.GetInt("width", DefaultWidth); w > 0 {
		cfg.Width = w
	} else {
		log.Printf("settings: width %d out of range, using %d", w, DefaultWidth)
	}
	if h := p.GetInt("height", DefaultHeight); h > 0 {
		cfg.Height = h
	} else {
		log.Printf("settings: height %d out of range, using %d", h, DefaultHeight)
	}

	return cfg
}
