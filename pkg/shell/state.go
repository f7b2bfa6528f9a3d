package shell

import "fmt"

// StateKind tags a State value.
type StateKind int

const (
	// StateOk means the last command succeeded.
	StateOk StateKind = iota
	// StateError means the last command failed; State.Message holds the reason.
	StateError
)

// State is the result of the most recent loop iteration.
// Message is only meaningful when Kind is StateError.
type State struct {
	Kind    StateKind
	Message string
}

// OkState returns the success state.
func OkState() State {
	return State{Kind: StateOk}
}

// ErrorState returns a failure state carrying msg.
func ErrorState(msg string) State {
	return State{Kind: StateError, Message: msg}
}

// IsError reports whether s is a failure state.
func (s State) IsError() bool {
	return s.Kind == StateError
}

func (s State) String() string {
	if s.IsError() {
		return fmt.Sprintf("Error(%q)", s.Message)
	}
	return "Ok"
}
