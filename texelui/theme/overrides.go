// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/theme/overrides.go
// Summary: YAML theme override documents with validation.

package theme

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/framegrace/texelwidgets/defaults"
)

// Overrides is an override document:
//
//	palette: mocha
//	colors:
//	  accent: "#ffd700"
type Overrides struct {
	Palette string            `yaml:"palette" validate:"omitempty,palette"`
	Colors  map[string]string `yaml:"colors" validate:"omitempty,dive,keys,semantic_key,endkeys,rgbhex"`
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("semantic_key", func(fl validator.FieldLevel) bool {
			key := fl.Field().String()
			for _, k := range Keys {
				if k == key {
					return true
				}
			}
			return false
		})
		// hexcolor also admits alpha forms that ParseColor rejects.
		_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
			_, err := ParseColor(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
			_, err := Palette(fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

// ParseOverrides decodes and validates an override document.
func ParseOverrides(data []byte) (Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, fmt.Errorf("decode theme overrides: %w", err)
	}
	if err := validatorInstance().Struct(o); err != nil {
		return Overrides{}, fmt.Errorf("invalid theme overrides: %w", err)
	}
	return o, nil
}

// LoadOverrides reads an override document from path, or from the embedded
// defaults when path is of the form "builtin:<name>".
func LoadOverrides(path string) (Overrides, error) {
	var (
		data []byte
		err  error
	)
	if name, ok := strings.CutPrefix(path, "builtin:"); ok {
		data, err = defaults.ThemeOverrides(name)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Overrides{}, fmt.Errorf("read theme overrides: %w", err)
	}
	return ParseOverrides(data)
}

// Apply resolves the override palette (or base when empty) and layers the
// colour overrides on top.
func (o Overrides) Apply(base Theme) (Theme, error) {
	t := base
	if o.Palette != "" {
		p, err := Palette(o.Palette)
		if err != nil {
			return Theme{}, err
		}
		t = p
	}
	colors := make(map[string]tcell.Color, len(o.Colors))
	for key, hex := range o.Colors {
		c, err := ParseColor(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("override %s: %w", key, err)
		}
		colors[key] = c
	}
	return t.With(colors), nil
}
