package ranged

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// HapticPulse is a fire-and-forget vibration request. A zero Duration asks
// for a single short pulse.
type HapticPulse struct {
	Strength float64 `yaml:"strength"`
	Duration float64 `yaml:"duration"` // seconds
	Interval float64 `yaml:"interval"` // seconds between repeats
}

// PointerConfig tunes the raycast issued from the held device.
type PointerConfig struct {
	MaxLength    float64   `yaml:"max_length"`
	IgnoreLayers LayerMask `yaml:"ignore_layers"`
}

// BrushConfig tunes the ranged brush.
type BrushConfig struct {
	BaseScale         float64     `yaml:"base_scale"`
	InitialMultiplier float64     `yaml:"initial_multiplier"`
	ScaleFactor       float64     `yaml:"scale_factor"`
	Min               float64     `yaml:"min"`
	Max               float64     `yaml:"max"`
	SweepCapture      bool        `yaml:"sweep_capture"`
	CapturePulse      HapticPulse `yaml:"capture_pulse"`
	ValidColor        Color       `yaml:"valid_color"`
	InvalidColor      Color       `yaml:"invalid_color"`
}

// LassoConfig tunes lasso sampling and closure.
type LassoConfig struct {
	Width            float64     `yaml:"width"`
	DrawColor        Color       `yaml:"draw_color"`
	CompleteColor    Color       `yaml:"complete_color"`
	InitialDistance  float64     `yaml:"initial_distance"`
	SampleInterval   float64     `yaml:"sample_interval"`
	CompleteDistance float64     `yaml:"complete_distance"`
	EdgeRadius       float64     `yaml:"edge_radius"`
	SamplePulse      HapticPulse `yaml:"sample_pulse"`
}

// RectangleConfig tunes the rectangle selection box.
type RectangleConfig struct {
	Width     float64 `yaml:"width"`
	Thickness float64 `yaml:"thickness"`
	Margin    float64 `yaml:"selection_margin"`
	Color     Color   `yaml:"color"`
}

// PullConfig tunes the pull gesture.
type PullConfig struct {
	StartThreshold    float64 `yaml:"start_threshold"`
	CompleteThreshold float64 `yaml:"complete_threshold"`
	HapticScale       float64 `yaml:"haptic_scale"`
	ReturnDuration    float64 `yaml:"return_duration"` // seconds
}

// HapticsConfig holds the fixed feedback pulses.
type HapticsConfig struct {
	Warning HapticPulse `yaml:"warning"`
}

// Config holds every tuning value of the controller.
type Config struct {
	Pointer   PointerConfig   `yaml:"pointer"`
	Brush     BrushConfig     `yaml:"brush"`
	Lasso     LassoConfig     `yaml:"lasso"`
	Rectangle RectangleConfig `yaml:"rectangle"`
	Pull      PullConfig      `yaml:"pull"`
	Haptics   HapticsConfig   `yaml:"haptics"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Pointer: PointerConfig{
			MaxLength:    100,
			IgnoreLayers: MaskOf(LayerIgnoreRaycast),
		},
		Brush: BrushConfig{
			BaseScale:         0.002,
			InitialMultiplier: 25,
			ScaleFactor:       0.5,
			Min:               0.01,
			Max:               0.1,
			SweepCapture:      true,
			CapturePulse:      HapticPulse{Strength: 0.15},
			ValidColor:        Color{0, 1, 0, 1},
			InvalidColor:      Color{1, 0, 0, 1},
		},
		Lasso: LassoConfig{
			Width:            0.005,
			DrawColor:        Color{1, 1, 1, 1},
			CompleteColor:    Color{1, 1, 0, 1},
			InitialDistance:  0.05,
			SampleInterval:   0.005,
			CompleteDistance: 0.015,
			EdgeRadius:       0.01,
			SamplePulse:      HapticPulse{Strength: 0.05},
		},
		Rectangle: RectangleConfig{
			Width:     0.01,
			Thickness: 0.02,
			Margin:    0.3,
			Color:     Color{0.3, 0.6, 1, 0.4},
		},
		Pull: PullConfig{
			StartThreshold:    0.025,
			CompleteThreshold: 0.2,
			HapticScale:       0.75,
			ReturnDuration:    0.25,
		},
		Haptics: HapticsConfig{
			Warning: HapticPulse{Strength: 0.75, Duration: 0.05, Interval: 0.005},
		},
	}
}

// Validate returns the first violated constraint, or nil.
func (c Config) Validate() error {
	switch {
	case c.Pointer.MaxLength <= 0:
		return errors.New("pointer.max_length must be > 0")
	case c.Brush.BaseScale <= 0:
		return errors.New("brush.base_scale must be > 0")
	case c.Brush.Min <= 0 || c.Brush.Min > c.Brush.Max:
		return fmt.Errorf("brush range [%v, %v] is invalid", c.Brush.Min, c.Brush.Max)
	case c.Lasso.SampleInterval <= 0:
		return errors.New("lasso.sample_interval must be > 0")
	case c.Lasso.CompleteDistance <= 0:
		return errors.New("lasso.complete_distance must be > 0")
	case c.Lasso.InitialDistance <= c.Lasso.CompleteDistance:
		return fmt.Errorf("lasso.initial_distance %v must exceed complete_distance %v",
			c.Lasso.InitialDistance, c.Lasso.CompleteDistance)
	case c.Rectangle.Thickness < 0 || c.Rectangle.Margin < 0:
		return errors.New("rectangle thickness and margin must be >= 0")
	case c.Pull.StartThreshold <= 0:
		return errors.New("pull.start_threshold must be > 0")
	case c.Pull.StartThreshold >= c.Pull.CompleteThreshold:
		return fmt.Errorf("pull.start_threshold %v must be below complete_threshold %v",
			c.Pull.StartThreshold, c.Pull.CompleteThreshold)
	case c.Pull.ReturnDuration < 0:
		return errors.New("pull.return_duration must be >= 0")
	}
	return nil
}

// ParseConfig decodes YAML on top of the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return ParseConfig(data)
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// UnmarshalYAML accepts either a list of layer indices or a raw bit mask.
func (m *LayerMask) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var layers []int
		if err := value.Decode(&layers); err != nil {
			return err
		}
		var mask LayerMask
		for _, l := range layers {
			if l < 0 || l > maxLayer {
				return fmt.Errorf("layer %d out of range [0, %d]", l, maxLayer)
			}
			mask |= MaskOf(Layer(l))
		}
		*m = mask
		return nil
	case yaml.ScalarNode:
		var raw uint32
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*m = LayerMask(raw)
		return nil
	}
	return fmt.Errorf("line %d: ignore_layers must be a list or an integer", value.Line)
}

// MarshalYAML encodes the mask as a list of layer indices.
func (m LayerMask) MarshalYAML() (any, error) {
	layers := m.Layers()
	out := make([]int, len(layers))
	for i, l := range layers {
		out[i] = int(l)
	}
	return out, nil
}
