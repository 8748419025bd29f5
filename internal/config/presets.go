package config

import "sort"

var Presets = map[string]*Config{
	"default": {
		Run:   RunConfig{Time: 1.0, Step: 0.1},
		Body:  BodyConfig{X: 2, Y: -2, Radius: 1, Points: 100},
		Field: FieldConfig{Grid: 5},
	},
	"fine": {
		Run:   RunConfig{Time: 1.0, Step: 0.01},
		Body:  BodyConfig{X: 2, Y: -2, Radius: 1, Points: 200},
		Field: FieldConfig{Grid: 5},
	},
	"centered": {
		Run:   RunConfig{Time: 1.0, Step: 0.1},
		Body:  BodyConfig{X: 0, Y: 0, Radius: 1, Points: 64},
		Field: FieldConfig{Grid: 3},
	},
	"long": {
		Run:   RunConfig{Time: 2.0, Step: 0.05},
		Body:  BodyConfig{X: 1, Y: 1, Radius: 1, Points: 100},
		Field: FieldConfig{Grid: 5},
	},
	"square": {
		Run:   RunConfig{Time: 1.0, Step: 0.5},
		Body:  BodyConfig{X: 0, Y: 0, Radius: 1, Points: 4},
		Field: FieldConfig{Grid: 1},
	},
}

// GetPreset returns a copy of the named preset, or nil if none exists.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
