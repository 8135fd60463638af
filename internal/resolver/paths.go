package resolver

import (
	"path/filepath"
)

// ConfigHomeEnv is the environment variable the default store path is derived from.
const ConfigHomeEnv = "XDG_CONFIG_HOME"

// Default store location beneath ConfigHomeEnv.
const (
	DefaultConfigDirName  = "projector"
	DefaultConfigFileName = "projector.json"
)

// ResolveConfigPath returns the explicit path if one was given, otherwise
// $XDG_CONFIG_HOME/projector/projector.json. The path is not checked for
// existence. An unset or empty XDG_CONFIG_HOME is a MissingEnvError.
func ResolveConfigPath(explicit string, env Env) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	base, ok := env.LookupEnv(ConfigHomeEnv)
	if !ok || base == "" {
		return "", &MissingEnvError{Name: ConfigHomeEnv}
	}

	return filepath.Join(base, DefaultConfigDirName, DefaultConfigFileName), nil
}

// ResolveWorkingDir returns the explicit directory if one was given,
// otherwise the process working directory as reported by env.
func ResolveWorkingDir(explicit string, env Env) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	dir, err := env.Getwd()
	if err != nil {
		return "", &WorkingDirError{Err: err}
	}
	return dir, nil
}
