package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Bridge bool
	Match  bool
	Patch  bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("VDF_DEBUG_TOKENS")
	d.Parse = boolEnv("VDF_DEBUG_PARSE")
	d.Bridge = boolEnv("VDF_DEBUG_BRIDGE")
	d.Match = boolEnv("VDF_DEBUG_MATCH")
	d.Patch = boolEnv("VDF_DEBUG_PATCH")
	d.Eval = boolEnv("VDF_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Bridge() bool {
	return d.Bridge
}
func Match() bool {
	return d.Match
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
