package config

import (
	"sort"

	"github.com/san-kum/odelab/internal/dynamo"
)

var Presets = map[string]map[string]*Config{
	"logistic": {
		"reference": {
			Model: "logistic", Params: ParamsConfig{R: 0.1, K: 40}, Y0: 1,
			Interval: dynamo.Interval{Start: 1, End: 200}, Steps: 50, CurvePoints: 1000,
		},
		"coarse": {
			Model: "logistic", Params: ParamsConfig{R: 0.1, K: 40}, Y0: 1,
			Interval: dynamo.Interval{Start: 1, End: 200}, Steps: 10, CurvePoints: 1000,
		},
		"fine": {
			Model: "logistic", Params: ParamsConfig{R: 0.1, K: 40}, Y0: 1,
			Interval: dynamo.Interval{Start: 1, End: 200}, Steps: 500, CurvePoints: 1000,
		},
		"aligned": {
			Model: "logistic", Params: ParamsConfig{R: 0.1, K: 40}, Y0: 1,
			Interval: dynamo.Interval{Start: 1, End: 200}, Steps: 50, CurvePoints: 1000,
			AlignStart: true,
		},
		"slow": {
			Model: "logistic", Params: ParamsConfig{R: 0.01, K: 100}, Y0: 5,
			Interval: dynamo.Interval{Start: 0, End: 1000}, Steps: 100, CurvePoints: 1000,
		},
		"decay": {
			Model: "logistic", Params: ParamsConfig{R: 0.1, K: 40}, Y0: 80,
			Interval: dynamo.Interval{Start: 0, End: 100}, Steps: 50, CurvePoints: 1000,
		},
	},
	"exponential": {
		"unit": {
			Model: "exponential", Params: ParamsConfig{R: 1}, Y0: 1,
			Interval: dynamo.Interval{Start: 0, End: 1}, Steps: 10, CurvePoints: 1000,
		},
		"dense": {
			Model: "exponential", Params: ParamsConfig{R: 1}, Y0: 1,
			Interval: dynamo.Interval{Start: 0, End: 1}, Steps: 201, CurvePoints: 1000,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
