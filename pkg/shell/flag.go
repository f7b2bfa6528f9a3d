package shell

import (
	"sort"
	"strconv"
)

// FlagKind tags the value held by a Flag.
type FlagKind int

const (
	FlagString FlagKind = iota
	FlagBool
	FlagInt
)

func (k FlagKind) String() string {
	switch k {
	case FlagBool:
		return "bool"
	case FlagInt:
		return "int"
	default:
		return "string"
	}
}

// Flag is a typed value kept in the shell's flag store.
// Exactly one of string, bool or int is held, as reported by Kind.
type Flag struct {
	kind FlagKind
	str  string
	b    bool
	n    int
}

// StringFlag wraps a string value.
func StringFlag(v string) Flag {
	return Flag{kind: FlagString, str: v}
}

// BoolFlag wraps a bool value.
func BoolFlag(v bool) Flag {
	return Flag{kind: FlagBool, b: v}
}

// IntFlag wraps an int value.
func IntFlag(v int) Flag {
	return Flag{kind: FlagInt, n: v}
}

// ParseFlag infers the type of raw: "true"/"false" become bools, canonical
// integers become ints and anything else is kept as a string. "007", "+5" and
// "-0" stay strings so the value always prints back as entered.
func ParseFlag(raw string) Flag {
	switch raw {
	case "true":
		return BoolFlag(true)
	case "false":
		return BoolFlag(false)
	}
	if n, err := strconv.Atoi(raw); err == nil && strconv.Itoa(n) == raw {
		return IntFlag(n)
	}
	return StringFlag(raw)
}

// Kind returns the tag of the held value.
func (f Flag) Kind() FlagKind {
	return f.kind
}

// Str returns the string value and whether the flag holds one.
func (f Flag) Str() (string, bool) {
	return f.str, f.kind == FlagString
}

// Bool returns the bool value and whether the flag holds one.
func (f Flag) Bool() (bool, bool) {
	return f.b, f.kind == FlagBool
}

// Int returns the int value and whether the flag holds one.
func (f Flag) Int() (int, bool) {
	return f.n, f.kind == FlagInt
}

// Value returns the held value as an interface.
func (f Flag) Value() any {
	switch f.kind {
	case FlagBool:
		return f.b
	case FlagInt:
		return f.n
	default:
		return f.str
	}
}

func (f Flag) String() string {
	switch f.kind {
	case FlagBool:
		return strconv.FormatBool(f.b)
	case FlagInt:
		return strconv.Itoa(f.n)
	default:
		return f.str
	}
}

// MarshalYAML emits the bare value so dumps read naturally.
func (f Flag) MarshalYAML() (any, error) {
	return f.Value(), nil
}

// SetFlag inserts or overwrites a flag.
func (s *Shell) SetFlag(name string, value Flag) {
	s.flags[name] = value
}

// GetFlag returns the flag stored under name, if any.
func (s *Shell) GetFlag(name string) (Flag, bool) {
	f, ok := s.flags[name]
	return f, ok
}

// UnsetFlag removes a flag. Removing an absent flag is a no-op.
func (s *Shell) UnsetFlag(name string) {
	delete(s.flags, name)
}

// FlagNames returns the stored flag names in sorted order.
func (s *Shell) FlagNames() []string {
	names := make([]string, 0, len(s.flags))
	for name := range s.flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
