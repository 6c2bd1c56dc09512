// Package debug gates tracing output on JT_DEBUG_* environment
// variables read once at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Query bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JT_DEBUG_PARSE")
	d.Patch = boolEnv("JT_DEBUG_PATCH")
	d.Query = boolEnv("JT_DEBUG_QUERY")
	d.LSP = boolEnv("JT_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
func LSP() bool {
	return d.LSP
}
