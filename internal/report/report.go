// Package report renders a resolved Config, or the error that prevented one,
// for humans and scripts.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"projector/internal/resolver"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Error codes for structured error output.
const (
	CodeArgumentCount     = "ARGUMENT_COUNT_MISMATCH"
	CodeMissingEnv        = "MISSING_ENVIRONMENT_VARIABLE"
	CodeWorkingDirMissing = "WORKING_DIRECTORY_UNAVAILABLE"
	CodeInternal          = "INTERNAL_ERROR"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format '%s', must be one of: text, json, yaml", s)
}

// Document is the serialised form of a resolved Config.
type Document struct {
	Operation OperationDoc `json:"operation" yaml:"operation"`
	Config    string       `json:"config" yaml:"config"`
	Pwd       string       `json:"pwd" yaml:"pwd"`
}

// OperationDoc is the serialised form of an Operation.
// Key and Value are pointers so an empty key stays distinguishable from none.
type OperationDoc struct {
	Kind  string  `json:"kind" yaml:"kind"`
	Key   *string `json:"key,omitempty" yaml:"key,omitempty"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}

// NewDocument converts cfg into its serialisable form.
func NewDocument(cfg resolver.Config) Document {
	op := OperationDoc{Kind: string(cfg.Operation.Kind)}
	if cfg.Operation.HasKey() {
		key := cfg.Operation.Key
		op.Key = &key
	}
	if cfg.Operation.HasValue() {
		value := cfg.Operation.Value
		op.Value = &value
	}
	return Document{
		Operation: op,
		Config:    cfg.ConfigPath,
		Pwd:       cfg.WorkingDir,
	}
}

// Render writes cfg to w in format f.
func Render(w io.Writer, cfg resolver.Config, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, NewDocument(cfg))
	case FormatYAML:
		return writeYAML(w, NewDocument(cfg))
	default:
		return writeText(w, cfg)
	}
}

func writeText(w io.Writer, cfg resolver.Config) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "operation: %s\n", cfg.Operation.Kind)
	if cfg.Operation.HasKey() {
		fmt.Fprintf(&sb, "key: %q\n", cfg.Operation.Key)
	}
	if cfg.Operation.HasValue() {
		fmt.Fprintf(&sb, "value: %q\n", cfg.Operation.Value)
	}
	fmt.Fprintf(&sb, "config: %s\n", cfg.ConfigPath)
	fmt.Fprintf(&sb, "pwd: %s\n", cfg.WorkingDir)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
