package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
)

// Preset is a named timer configuration, e.g. the AMC 10 75-minute countdown.
type Preset struct {
	Name     string
	Mode     sessiontimer.Mode
	Duration time.Duration
}

// Presets maps lower-case preset names to their configuration.
type Presets map[string]Preset

// DefaultPresets are used when no presets file exists.
func DefaultPresets() Presets {
	return Presets{
		"amc8":     {Name: "amc8", Mode: sessiontimer.Countdown, Duration: 40 * time.Minute},
		"amc10":    {Name: "amc10", Mode: sessiontimer.Countdown, Duration: 75 * time.Minute},
		"amc12":    {Name: "amc12", Mode: sessiontimer.Countdown, Duration: 75 * time.Minute},
		"aime":     {Name: "aime", Mode: sessiontimer.Countdown, Duration: 3 * time.Hour},
		"practice": {Name: "practice", Mode: sessiontimer.Stopwatch},
	}
}

// Lookup finds a preset by case-insensitive name.
func (p Presets) Lookup(name string) (Preset, bool) {
	preset, ok := p[strings.ToLower(strings.TrimSpace(name))]
	return preset, ok
}

// Names returns preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPresets reads presets from a TOML file of the form
//
//	[presets.amc10]
//	mode = "countdown"
//	duration = "75m"
//
// An empty path or a missing file yields DefaultPresets. Presets in the file
// are merged over the defaults.
func LoadPresets(path string) (Presets, error) {
	presets := DefaultPresets()
	if strings.TrimSpace(path) == "" {
		return presets, nil
	}

	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return presets, nil
		}
		return nil, fmt.Errorf("read presets: %w", err)
	}

	var raw struct {
		Presets map[string]struct {
			Mode     string `toml:"mode"`
			Duration string `toml:"duration"`
		} `toml:"presets"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	for name, entry := range raw.Presets {
		key := strings.ToLower(strings.TrimSpace(name))
		mode, ok := sessiontimer.ParseMode(strings.TrimSpace(entry.Mode))
		if !ok {
			return nil, fmt.Errorf("preset %q: unknown mode %q", name, entry.Mode)
		}
		var d time.Duration
		if strings.TrimSpace(entry.Duration) != "" {
			d, err = time.ParseDuration(strings.TrimSpace(entry.Duration))
			if err != nil || d < 0 {
				return nil, fmt.Errorf("preset %q: invalid duration %q", name, entry.Duration)
			}
		}
		if mode == sessiontimer.Countdown && d == 0 {
			return nil, fmt.Errorf("preset %q: countdown needs a duration", name)
		}
		presets[key] = Preset{Name: key, Mode: mode, Duration: d}
	}
	return presets, nil
}

func expandHome(path string) string {
	trimmed := strings.TrimSpace(path)
	if !strings.HasPrefix(trimmed, "~") {
		return trimmed
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return trimmed
	}
	return filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
}
