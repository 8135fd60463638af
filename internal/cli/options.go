package cli

import (
	"github.com/spf13/pflag"
)

// Options holds the raw, unvalidated inputs for one invocation.
// An empty ConfigPath or WorkingDir means the value was not supplied.
type Options struct {
	Args       []string // Positional tokens left after flag parsing
	ConfigPath string   // --config <path>
	WorkingDir string   // --pwd <path>
}

// NewOptions builds Options from already-parsed inputs.
// The token slice is copied so the caller may reuse its backing array.
func NewOptions(args []string, configPath, workingDir string) Options {
	var copied []string
	if len(args) > 0 {
		copied = make([]string, len(args))
		copy(copied, args)
	}
	return Options{
		Args:       copied,
		ConfigPath: configPath,
		WorkingDir: workingDir,
	}
}

// BindFlags registers the config and working directory flags on fs.
// Values land in o when fs is parsed.
func BindFlags(fs *pflag.FlagSet, o *Options) {
	fs.StringVarP(&o.ConfigPath, "config", "c", "", "Path to the projector store (default $XDG_CONFIG_HOME/projector/projector.json)")
	fs.StringVarP(&o.WorkingDir, "pwd", "p", "", "Working directory to resolve against (default current directory)")
}

// HasConfigPath reports whether an explicit config path was supplied.
func (o Options) HasConfigPath() bool {
	return o.ConfigPath != ""
}

// HasWorkingDir reports whether an explicit working directory was supplied.
func (o Options) HasWorkingDir() bool {
	return o.WorkingDir != ""
}
