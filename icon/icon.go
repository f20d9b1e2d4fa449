// Package icon renders UI symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/biiclasses/bii/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns all supported icon variants.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Vector
	Stack
	Lua
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "+", squares: "🟩"},
	Fail:     {emoji: "❌", nerd: "", plain: "x", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "", plain: "~", squares: "🟦"},
	Vector:   {emoji: "📏", nerd: "", plain: "[]", squares: "🟨"},
	Stack:    {emoji: "📚", nerd: "", plain: "#", squares: "🟪"},
	Lua:      {emoji: "🌙", nerd: "", plain: "lua", squares: "🟦"},
}

// Get returns the rendering of i for the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
