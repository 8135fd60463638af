package resolver

import (
	"os"
	"strings"
)

// Env is the process state the resolver is allowed to read.
type Env interface {
	LookupEnv(name string) (string, bool)
	Getwd() (string, error)
}

// OSEnv reads the real process environment and working directory.
type OSEnv struct{}

func (OSEnv) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

func (OSEnv) Getwd() (string, error) { return os.Getwd() }

// environ is an Env backed by a KEY=VALUE slice.
type environ struct {
	vars  map[string]string
	getwd func() (string, error)
}

// NewEnviron returns an Env built from an environ slice (format: "KEY=VALUE")
// and a working directory lookup. A nil getwd falls back to os.Getwd.
func NewEnviron(env []string, getwd func() (string, error)) Env {
	if getwd == nil {
		getwd = os.Getwd
	}
	return &environ{vars: parseEnviron(env), getwd: getwd}
}

func (e *environ) LookupEnv(name string) (string, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *environ) Getwd() (string, error) {
	return e.getwd()
}

// parseEnviron converts an environ slice (["KEY=VALUE", ...]) into a map.
// Handles edge cases like empty values ("KEY=") and values containing "=" ("KEY=a=b").
// Later entries win, matching how the process environment treats duplicates.
func parseEnviron(env []string) map[string]string {
	result := make(map[string]string)
	for _, entry := range env {
		// Split on first "=" only - values can contain "="
		idx := strings.Index(entry, "=")
		if idx == -1 {
			// No "=" found, skip malformed entry
			continue
		}
		result[entry[:idx]] = entry[idx+1:]
	}
	return result
}
