package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Cow     bool
	Intern  bool
	Split   bool
	Unsplit bool
}

var d *debug

func init() {
	d = &debug{}
	d.Cow = boolEnv("GRIP_DEBUG_COW")
	d.Intern = boolEnv("GRIP_DEBUG_INTERN")
	d.Split = boolEnv("GRIP_DEBUG_SPLIT")
	d.Unsplit = boolEnv("GRIP_DEBUG_UNSPLIT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Cow() bool {
	return d.Cow
}
func Intern() bool {
	return d.Intern
}
func Split() bool {
	return d.Split
}
func Unsplit() bool {
	return d.Unsplit
}
