package resolver

import (
	"fmt"
)

// ArgumentCountError reports a verb supplied with the wrong number of
// arguments. Counts never include the first token.
type ArgumentCountError struct {
	Operation string // "add", "remove" or "print"
	Expected  int
	Actual    int
}

func (e *ArgumentCountError) Error() string {
	if e.Operation == VerbPrint {
		// Format: "operation print expects at most 1 key but got {n} extra arguments"
		return fmt.Sprintf("operation print expects at most 1 key but got %d extra %s",
			e.Actual, plural(e.Actual, "argument", "arguments"))
	}
	// Format: "operation {op} expects {n} arguments but got {m}"
	return fmt.Sprintf("operation %s expects %d %s but got %d",
		e.Operation, e.Expected, plural(e.Expected, "argument", "arguments"), e.Actual)
}

// MissingEnvError is returned when the config path must be derived from an
// environment variable that is not set.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("unable to get %s: environment variable is not set", e.Name)
}

// WorkingDirError wraps a failure to query the current directory.
type WorkingDirError struct {
	Err error
}

func (e *WorkingDirError) Error() string {
	return fmt.Sprintf("error getting current directory: %v", e.Err)
}

func (e *WorkingDirError) Unwrap() error {
	return e.Err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
