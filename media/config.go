package media

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Breakpoint sets may be configured in YAML:
//
//	breakpoints:
//	  - alias: sm
//	    media: "(min-width: 640px) and (max-width: 767px)"
//	  - alias: md
//	    min: 768
//	    max: 1023
//	  - alias: lg
//	    min: 1024
//
// An entry either carries an explicit media query or min/max pixel
// bounds, from which the query is derived. Entries without an upper
// bound are overlapping.

type configEntry struct {
	Alias string `yaml:"alias"`
	Media string `yaml:"media"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
}

type config struct {
	Breakpoints []configEntry `yaml:"breakpoints"`
}

// Load reads a breakpoint configuration in YAML format.
func Load(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("media: cannot read breakpoint config: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a breakpoint configuration from a YAML file.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("media: cannot open breakpoint config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Parse decodes a YAML breakpoint configuration into a Set.
func Parse(data []byte) (*Set, error) {
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("media: invalid breakpoint config: %w", err)
	}
	bps := make([]Breakpoint, 0, len(cfg.Breakpoints))
	for _, e := range cfg.Breakpoints {
		bp, err := e.breakpoint()
		if err != nil {
			return nil, err
		}
		bps = append(bps, bp)
	}
	tracer().Debugf("loaded %d breakpoint(s) from config", len(bps))
	return NewSet(bps...), nil
}

func (e configEntry) breakpoint() (Breakpoint, error) {
	if e.Alias == "" {
		return Breakpoint{}, fmt.Errorf("media: breakpoint entry without alias")
	}
	if e.Media != "" {
		return Breakpoint{Alias: e.Alias, MediaQuery: e.Media, Overlapping: e.Max == 0}, nil
	}
	if e.Min == 0 && e.Max == 0 {
		return Breakpoint{}, fmt.Errorf("media: breakpoint %q needs a media query or min/max bounds", e.Alias)
	}
	return Breakpoint{Alias: e.Alias, MediaQuery: Query(e.Min, e.Max), Overlapping: e.Max == 0}, nil
}
