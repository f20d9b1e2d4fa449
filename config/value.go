package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/biiclasses/bii/constant"
	"github.com/biiclasses/bii/harness"
	"github.com/biiclasses/bii/icon"
	"github.com/biiclasses/bii/key"
	"github.com/biiclasses/bii/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	ErrUnknownKey   = errors.New("unknown key")
	ErrInvalidValue = errors.New("invalid value")
)

// validators reject values that would only fail later, when the key is read.
var validators = map[string]func(v any) error{
	key.HarnessSize: func(v any) error {
		if v.(int) < 1 {
			return errors.New("must be at least 1")
		}
		return nil
	},
	key.HarnessVectorSections: sections(harness.VectorSuite),
	key.HarnessStackSections:  sections(harness.StackSuite),
	key.RenderWrap: func(v any) error {
		if v.(int) < 0 {
			return errors.New("must not be negative")
		}
		return nil
	},
	key.IconsVariant: func(v any) error {
		if !lo.Contains(icon.AvailableVariants(), v.(string)) {
			return fmt.Errorf("available: %s", strings.Join(icon.AvailableVariants(), ", "))
		}
		return nil
	},
	key.LogsLevel: func(v any) error {
		_, err := logrus.ParseLevel(v.(string))
		return err
	},
}

func sections(suite string) func(v any) error {
	return func(v any) error {
		letters := lo.Map(harness.Sections(suite), func(s lo.Tuple2[string, string], _ int) string { return s.A })
		wanted := lo.Compact(lo.Map(v.([]string), func(w string, _ int) string {
			return strings.ToUpper(strings.TrimSpace(w))
		}))

		if len(wanted) == 0 {
			return fmt.Errorf("at least one %s section is required, available: %s", suite, strings.Join(letters, ", "))
		}
		if unknown := lo.Without(wanted, letters...); len(unknown) > 0 {
			return fmt.Errorf("unknown %s sections %s, available: %s", suite, strings.Join(unknown, ", "), strings.Join(letters, ", "))
		}
		return nil
	}
}

// Path is the location of the config file, whether or not it exists.
func Path() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// Lookup returns the registered field for k.
// Unknown keys fail with ErrUnknownKey and the closest registered key.
func Lookup(k string) (Field, error) {
	if field, ok := Default[k]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return Field{}, fmt.Errorf("%w %s, did you mean %s?", ErrUnknownKey, k, closest)
}

// Parse converts command line words into a value of the field's type.
func (f *Field) Parse(words []string) (any, error) {
	if _, ok := f.Value.([]string); ok {
		return lo.FlatMap(words, func(w string, _ int) []string { return strings.Split(w, ",") }), nil
	}

	if len(words) != 1 {
		return nil, fmt.Errorf("%w: %s takes exactly one value, got %d", ErrInvalidValue, f.Key, len(words))
	}

	word := words[0]
	switch f.Value.(type) {
	case string:
		return word, nil
	case int:
		n, err := strconv.Atoi(word)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects an integer, got %q", ErrInvalidValue, f.Key, word)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(word)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects a boolean, got %q", ErrInvalidValue, f.Key, word)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %s has unsupported type %s", ErrInvalidValue, f.Key, f.typeName())
	}
}

// Validate runs the key specific checks for an already parsed value.
func (f *Field) Validate(v any) error {
	validate, ok := validators[f.Key]
	if !ok {
		return nil
	}

	if err := validate(v); err != nil {
		return fmt.Errorf("%w: %s %v: %w", ErrInvalidValue, f.Key, v, err)
	}
	return nil
}

// Set parses, validates and persists a new value for k.
func Set(k string, words []string) (any, error) {
	field, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	v, err := field.Parse(words)
	if err != nil {
		return nil, err
	}

	if err := field.Validate(v); err != nil {
		return nil, err
	}

	viper.Set(k, v)
	return v, Save()
}

// Reset restores the given keys to their defaults and persists them.
// With no keys every field is reset.
func Reset(keys ...string) error {
	if len(keys) == 0 {
		keys = lo.Keys(Default)
	}

	for _, k := range keys {
		field, err := Lookup(k)
		if err != nil {
			return err
		}
		viper.Set(k, field.Value)
	}

	return Save()
}
