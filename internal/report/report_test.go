package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gopkg.in/yaml.v3"

	"projector/internal/resolver"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "text", want: FormatText},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRender_Text(t *testing.T) {
	cfg := resolver.Config{
		Operation:  resolver.Add("foo", "bar baz"),
		WorkingDir: "/work",
		ConfigPath: "/cfg/projector/projector.json",
	}

	var buf bytes.Buffer
	if err := Render(&buf, cfg, FormatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "operation: add\nkey: \"foo\"\nvalue: \"bar baz\"\nconfig: /cfg/projector/projector.json\npwd: /work\n"
	if buf.String() != want {
		t.Errorf("Render() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRender_TextPrintAll(t *testing.T) {
	cfg := resolver.Config{Operation: resolver.PrintAll(), WorkingDir: "/w", ConfigPath: "/c"}

	var buf bytes.Buffer
	if err := Render(&buf, cfg, FormatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "key:") || strings.Contains(buf.String(), "value:") {
		t.Errorf("print-all output should carry no key or value:\n%s", buf.String())
	}
}

func TestRender_JSONOmitsAbsentPayload(t *testing.T) {
	tests := []struct {
		name      string
		op        resolver.Operation
		wantKey   bool
		wantValue bool
	}{
		{name: "print-all", op: resolver.PrintAll()},
		{name: "print-one empty key", op: resolver.PrintOne(""), wantKey: true},
		{name: "remove", op: resolver.Remove("k"), wantKey: true},
		{name: "add", op: resolver.Add("k", ""), wantKey: true, wantValue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := resolver.Config{Operation: tt.op, WorkingDir: "/w", ConfigPath: "/c"}
			if err := Render(&buf, cfg, FormatJSON); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var raw struct {
				Operation map[string]any `json:"operation"`
			}
			if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
				t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
			}
			_, hasKey := raw.Operation["key"]
			_, hasValue := raw.Operation["value"]
			if hasKey != tt.wantKey {
				t.Errorf("key present = %v, want %v", hasKey, tt.wantKey)
			}
			if hasValue != tt.wantValue {
				t.Errorf("value present = %v, want %v", hasValue, tt.wantValue)
			}
		})
	}
}

func TestRenderError(t *testing.T) {
	countErr := &resolver.ArgumentCountError{Operation: "add", Expected: 2, Actual: 1}

	var text bytes.Buffer
	if err := RenderError(&text, countErr, FormatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text.String() != "Error: operation add expects 2 arguments but got 1\n" {
		t.Errorf("text = %q", text.String())
	}

	var js bytes.Buffer
	if err := RenderError(&js, countErr, FormatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var env errorEnvelope
	if err := json.Unmarshal(js.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if env.Error.Code != CodeArgumentCount || env.Error.Operation != "add" {
		t.Errorf("doc = %+v", env.Error)
	}
	if env.Error.Expected == nil || *env.Error.Expected != 2 || env.Error.Actual == nil || *env.Error.Actual != 1 {
		t.Errorf("counts = %v/%v, want 2/1", env.Error.Expected, env.Error.Actual)
	}

	var ym bytes.Buffer
	if err := RenderError(&ym, &resolver.MissingEnvError{Name: "XDG_CONFIG_HOME"}, FormatYAML); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var yenv errorEnvelope
	if err := yaml.Unmarshal(ym.Bytes(), &yenv); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if yenv.Error.Code != CodeMissingEnv || yenv.Error.Variable != "XDG_CONFIG_HOME" {
		t.Errorf("doc = %+v", yenv.Error)
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&resolver.ArgumentCountError{Operation: "remove", Expected: 1}, CodeArgumentCount},
		{&resolver.MissingEnvError{Name: "X"}, CodeMissingEnv},
		{&resolver.WorkingDirError{Err: errors.New("gone")}, CodeWorkingDirMissing},
		{errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.want {
			t.Errorf("ErrorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func genOperation(str gopter.Gen) gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 3),
		str,
		str,
	).Map(func(vals []interface{}) resolver.Operation {
		key, value := vals[1].(string), vals[2].(string)
		switch vals[0].(int) {
		case 0:
			return resolver.PrintAll()
		case 1:
			return resolver.PrintOne(key)
		case 2:
			return resolver.Add(key, value)
		default:
			return resolver.Remove(key)
		}
	})
}

func fromDocument(doc Document) resolver.Config {
	op := resolver.Operation{Kind: resolver.Kind(doc.Operation.Kind)}
	if doc.Operation.Key != nil {
		op.Key = *doc.Operation.Key
	}
	if doc.Operation.Value != nil {
		op.Value = *doc.Operation.Value
	}
	return resolver.Config{Operation: op, ConfigPath: doc.Config, WorkingDir: doc.Pwd}
}

// For any resolved config, JSON and YAML output SHALL decode back to the same
// operation kind, key, value and paths.
func TestRender_StructuredRoundTrip_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("json output decodes to the same config", prop.ForAll(
		func(op resolver.Operation, pwd, config string) bool {
			cfg := resolver.Config{Operation: op, WorkingDir: pwd, ConfigPath: config}
			var buf bytes.Buffer
			if err := Render(&buf, cfg, FormatJSON); err != nil {
				return false
			}
			var doc Document
			if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
				return false
			}
			return fromDocument(doc) == cfg
		},
		genOperation(gen.AnyString()),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("yaml output decodes to the same config", prop.ForAll(
		func(op resolver.Operation, pwd, config string) bool {
			cfg := resolver.Config{Operation: op, WorkingDir: pwd, ConfigPath: config}
			var buf bytes.Buffer
			if err := Render(&buf, cfg, FormatYAML); err != nil {
				return false
			}
			var doc Document
			if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
				return false
			}
			return fromDocument(doc) == cfg
		},
		genOperation(gen.AlphaString()),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
