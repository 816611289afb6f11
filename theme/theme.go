// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package theme keeps the dark/light theme preference.
package theme

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ezrec/abacus/translate"
)

var f = translate.From

var (
	ErrTheme = errors.New(f("unknown theme"))
)

// Theme is a colour scheme.
type Theme string

const (
	DARK    = Theme("dark")
	LIGHT   = Theme("light")
	DEFAULT = DARK

	KEY = "theme" // Store key of the preference.
)

// Parse accepts "dark" or "light".
func Parse(text string) (t Theme, err error) {
	switch Theme(text) {
	case DARK, LIGHT:
		t = Theme(text)
	default:
		err = ErrTheme
	}
	return
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == DARK {
		return LIGHT
	}
	return DARK
}

func (t Theme) String() string {
	return string(t)
}

// Preference is the theme setting persisted in a Store.
type Preference struct {
	Store Store
	Log   *zap.Logger
}

func (pref *Preference) log() *zap.Logger {
	if pref.Log == nil {
		return zap.NewNop()
	}
	return pref.Log
}

// Load reads the preference. A missing or unknown value is DEFAULT.
func (pref *Preference) Load() (t Theme, err error) {
	value, ok, err := pref.Store.Get(KEY)
	if err != nil {
		return
	}

	t = DEFAULT
	if !ok {
		return
	}

	parsed, perr := Parse(value)
	if perr != nil {
		pref.log().Warn("ignoring stored theme", zap.String("value", value))
		return
	}

	t = parsed
	return
}

// Set stores a theme.
func (pref *Preference) Set(t Theme) (err error) {
	_, err = Parse(string(t))
	if err != nil {
		return
	}

	err = pref.Store.Set(KEY, string(t))
	if err != nil {
		return
	}

	pref.log().Debug("theme stored", zap.Stringer("theme", t))
	return
}

// Toggle switches to the other theme and stores it, in one store
// transaction.
func (pref *Preference) Toggle() (t Theme, err error) {
	value, err := pref.Store.Update(KEY, func(old string, ok bool) (string, error) {
		current := DEFAULT
		if ok {
			parsed, perr := Parse(old)
			if perr != nil {
				pref.log().Warn("ignoring stored theme", zap.String("value", old))
			} else {
				current = parsed
			}
		}
		return string(current.Toggle()), nil
	})
	if err != nil {
		return
	}

	t = Theme(value)
	pref.log().Debug("theme stored", zap.Stringer("theme", t))
	return
}
