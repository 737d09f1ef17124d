// Package scene loads the office layout, resolves its interactive objects into
// slot configs and moves the player between their trigger zones.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/interaction"
)

//go:embed office.yaml
var defaultLayout []byte

// ErrInvalidLayout wraps every layout validation failure
var ErrInvalidLayout = errors.New("invalid scene layout")

// Layout is the YAML description of a scene
type Layout struct {
	Name    string         `yaml:"name"`
	Width   int            `yaml:"width"`
	Height  int            `yaml:"height"`
	Spawn   core.Point     `yaml:"spawn"`
	Walls   []core.Area    `yaml:"walls,omitempty"`
	Objects []ObjectConfig `yaml:"objects"`
	Cat     *CatConfig     `yaml:"cat,omitempty"`
}

// ObjectConfig is one interactive object
type ObjectConfig struct {
	ID    string    `yaml:"id"`
	Label string    `yaml:"label"`
	Glyph string    `yaml:"glyph"`
	Area  core.Area `yaml:"area"`
	// Trigger defaults to the area grown by one cell
	Trigger         *core.Area    `yaml:"trigger,omitempty"`
	Puzzle          string        `yaml:"puzzle,omitempty"`
	Task            string        `yaml:"task,omitempty"`
	Cooldown        time.Duration `yaml:"cooldown,omitempty"`
	Prompt          string        `yaml:"prompt,omitempty"`
	StartOnCooldown *bool         `yaml:"start_on_cooldown,omitempty"`
	Disabled        bool          `yaml:"disabled,omitempty"`
}

// Object is a resolved ObjectConfig
type Object struct {
	ID      string
	Label   string
	Glyph   rune
	Area    core.Area
	Trigger core.Area
	Slot    interaction.Config
}

// Default returns the embedded office layout
func Default() (*Layout, error) {
	return Parse(defaultLayout)
}

// Load reads a layout file, an empty path selects the embedded default
func Load(path string) (*Layout, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML layout
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks bounds, identifiers and kinds
func (l *Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidLayout, l.Width, l.Height)
	}
	if l.Spawn.X < 0 || l.Spawn.Y < 0 || l.Spawn.X >= l.Width || l.Spawn.Y >= l.Height {
		return fmt.Errorf("%w: spawn %v outside scene", ErrInvalidLayout, l.Spawn)
	}
	for i, w := range l.Walls {
		if w.Empty() || !w.Within(l.Width, l.Height) {
			return fmt.Errorf("%w: wall %d out of bounds", ErrInvalidLayout, i)
		}
	}

	ids := make(map[string]bool)
	managers := 0
	for _, o := range l.Objects {
		if o.ID == "" {
			return fmt.Errorf("%w: object with empty id", ErrInvalidLayout)
		}
		if ids[o.ID] {
			return fmt.Errorf("%w: duplicate object id %s", ErrInvalidLayout, o.ID)
		}
		ids[o.ID] = true

		if o.Area.Empty() || !o.Area.Within(l.Width, l.Height) {
			return fmt.Errorf("%w: object %s out of bounds", ErrInvalidLayout, o.ID)
		}
		if o.Area.Contains(l.Spawn) {
			return fmt.Errorf("%w: spawn inside object %s", ErrInvalidLayout, o.ID)
		}
		if _, ok := core.ParsePuzzleKind(o.Puzzle); !ok {
			return fmt.Errorf("%w: object %s has unknown puzzle %q", ErrInvalidLayout, o.ID, o.Puzzle)
		}
		task, ok := core.ParseTaskKind(o.Task)
		if !ok {
			return fmt.Errorf("%w: object %s has unknown task %q", ErrInvalidLayout, o.ID, o.Task)
		}
		if task == core.TaskManager {
			managers++
		}
		if o.Cooldown < 0 {
			return fmt.Errorf("%w: object %s has negative cooldown", ErrInvalidLayout, o.ID)
		}
	}
	if managers > 1 {
		return fmt.Errorf("%w: %d manager objects, at most one allowed", ErrInvalidLayout, managers)
	}
	return l.validateCat()
}

func (l *Layout) validateCat() error {
	if l.Cat == nil {
		return nil
	}
	c := l.Cat
	if c.Roam.Empty() || !c.Roam.Within(l.Width, l.Height) {
		return fmt.Errorf("%w: cat roam area out of bounds", ErrInvalidLayout)
	}
	if !c.Roam.Contains(c.Start) {
		return fmt.Errorf("%w: cat start %v outside its roam area", ErrInvalidLayout, c.Start)
	}
	if c.Start == l.Spawn {
		return fmt.Errorf("%w: cat starts on the player spawn", ErrInvalidLayout)
	}
	for _, w := range l.Walls {
		if w.Contains(c.Start) {
			return fmt.Errorf("%w: cat starts inside a wall", ErrInvalidLayout)
		}
	}
	for _, o := range l.Objects {
		if o.Area.Contains(c.Start) {
			return fmt.Errorf("%w: cat starts inside object %s", ErrInvalidLayout, o.ID)
		}
	}
	return nil
}

// Resolve converts object configs into runtime objects with slot configs
func (l *Layout) Resolve() []Object {
	out := make([]Object, 0, len(l.Objects))
	for _, o := range l.Objects {
		puzzle, _ := core.ParsePuzzleKind(o.Puzzle)
		task, _ := core.ParseTaskKind(o.Task)

		trigger := o.Area.Grow(1)
		if o.Trigger != nil {
			trigger = *o.Trigger
		}

		// Manager calls start after the first cooldown unless the layout says otherwise
		startOnCooldown := task == core.TaskManager
		if o.StartOnCooldown != nil {
			startOnCooldown = *o.StartOnCooldown
		}

		glyph := '#'
		for _, r := range o.Glyph {
			glyph = r
			break
		}

		label := o.Label
		if label == "" {
			label = o.ID
		}

		out = append(out, Object{
			ID:      o.ID,
			Label:   label,
			Glyph:   glyph,
			Area:    o.Area,
			Trigger: trigger,
			Slot: interaction.Config{
				ID:              o.ID,
				Puzzle:          puzzle,
				Task:            task,
				Cooldown:        o.Cooldown,
				Prompt:          o.Prompt,
				StartOnCooldown: startOnCooldown,
				Disabled:        o.Disabled,
			},
		})
	}
	return out
}
