package encode

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	NumberColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			FieldColor:  color.RGB(128, 168, 196).SprintfFunc(),
			ValueColor:  color.RGB(8, 196, 16).SprintfFunc(),
			NumberColor: color.RGB(128, 216, 236).SprintfFunc(),
			SepColor:    color.RGB(196, 128, 128).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// valueAttr picks the color of a leaf value from its text.
func valueAttr(v string) ColorAttr {
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return NumberColor
	}
	return ValueColor
}
