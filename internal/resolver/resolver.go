// Package resolver turns raw command-line options into a validated Config:
// a classified Operation plus the store path and working directory.
package resolver

import (
	"github.com/rs/zerolog"

	"projector/internal/cli"
)

// Config is the fully resolved result of one invocation.
type Config struct {
	Operation  Operation
	WorkingDir string
	ConfigPath string
}

// Resolver resolves Options against an injected environment.
type Resolver struct {
	env Env
	log zerolog.Logger
}

// New creates a Resolver reading process state through env.
func New(env Env, log zerolog.Logger) *Resolver {
	return &Resolver{env: env, log: log}
}

// Resolve classifies the operation, then resolves the config path, then the
// working directory. The first failure is returned and no Config is produced.
func (r *Resolver) Resolve(opts cli.Options) (Config, error) {
	op, err := ParseOperation(opts.Args)
	if err != nil {
		r.log.Debug().Strs("args", opts.Args).Err(err).Msg("operation classification failed")
		return Config{}, err
	}
	r.log.Debug().Str("kind", string(op.Kind)).Int("tokens", len(opts.Args)).Msg("classified operation")

	configPath, err := ResolveConfigPath(opts.ConfigPath, r.env)
	if err != nil {
		r.log.Debug().Err(err).Msg("config path resolution failed")
		return Config{}, err
	}
	r.log.Debug().Str("config", configPath).Bool("explicit", opts.HasConfigPath()).Msg("resolved config path")

	pwd, err := ResolveWorkingDir(opts.WorkingDir, r.env)
	if err != nil {
		r.log.Debug().Err(err).Msg("working directory resolution failed")
		return Config{}, err
	}
	r.log.Debug().Str("pwd", pwd).Bool("explicit", opts.HasWorkingDir()).Msg("resolved working directory")

	return Config{
		Operation:  op,
		WorkingDir: pwd,
		ConfigPath: configPath,
	}, nil
}

// Resolve is a convenience for New(env, zerolog.Nop()).Resolve(opts).
func Resolve(opts cli.Options, env Env) (Config, error) {
	return New(env, zerolog.Nop()).Resolve(opts)
}
