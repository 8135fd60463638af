package resolver

// Kind identifies which operation an invocation requests.
type Kind string

const (
	KindPrintAll Kind = "print-all"
	KindPrintOne Kind = "print-one"
	KindAdd      Kind = "add"
	KindRemove   Kind = "remove"
)

// Verbs recognised as the first token. Anything else is a print.
const (
	VerbAdd    = "add"
	VerbRemove = "remove"
	VerbPrint  = "print"
)

// Verb returns the operation name used in error messages.
func (k Kind) Verb() string {
	switch k {
	case KindAdd:
		return VerbAdd
	case KindRemove:
		return VerbRemove
	default:
		return VerbPrint
	}
}

// Operation is a classified request against the store.
// Key is set for PrintOne, Add and Remove; Value only for Add.
type Operation struct {
	Kind  Kind
	Key   string
	Value string
}

func PrintAll() Operation {
	return Operation{Kind: KindPrintAll}
}

func PrintOne(key string) Operation {
	return Operation{Kind: KindPrintOne, Key: key}
}

func Add(key, value string) Operation {
	return Operation{Kind: KindAdd, Key: key, Value: value}
}

func Remove(key string) Operation {
	return Operation{Kind: KindRemove, Key: key}
}

// HasKey reports whether the operation carries a key.
func (o Operation) HasKey() bool {
	return o.Kind == KindPrintOne || o.Kind == KindAdd || o.Kind == KindRemove
}

// HasValue reports whether the operation carries a value.
func (o Operation) HasValue() bool {
	return o.Kind == KindAdd
}

// ParseOperation classifies positional tokens into an Operation.
//
// The first token selects the verb, checked in the order add, remove, then
// print. A key literally named "add" or "remove" cannot be printed: a single
// such token is always a malformed add or remove.
//
// Argument counts in errors exclude the first token for every verb.
func ParseOperation(tokens []string) (Operation, error) {
	if len(tokens) == 0 {
		return PrintAll(), nil
	}

	switch tokens[0] {
	case VerbAdd:
		if len(tokens) != 3 {
			return Operation{}, &ArgumentCountError{Operation: VerbAdd, Expected: 2, Actual: len(tokens) - 1}
		}
		return Add(tokens[1], tokens[2]), nil
	case VerbRemove:
		if len(tokens) != 2 {
			return Operation{}, &ArgumentCountError{Operation: VerbRemove, Expected: 1, Actual: len(tokens) - 1}
		}
		return Remove(tokens[1]), nil
	}

	if len(tokens) > 1 {
		return Operation{}, &ArgumentCountError{Operation: VerbPrint, Expected: 0, Actual: len(tokens) - 1}
	}
	return PrintOne(tokens[0]), nil
}
