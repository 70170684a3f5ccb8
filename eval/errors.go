package eval

import "fmt"

// All evaluation failures are terminal for the current Interpret call: the
// first error anywhere in a subtree aborts the statement and the whole run.
// Messages are the user-visible signal and are displayed verbatim by hosts.

type UndefinedVariableError struct {
	Name string
}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable: '%s'.", e.Name)
}

type UndefinedFunctionError struct {
	Name string
}

func (e UndefinedFunctionError) Error() string {
	return fmt.Sprintf("Undefined function: '%s'.", e.Name)
}

type ArgumentCountError struct {
	Name     string
	Expected int
	Actual   int
}

func (e ArgumentCountError) Error() string {
	return fmt.Sprintf("Expected %d arguments in function '%s' but found %d.",
		e.Expected, e.Name, e.Actual)
}

type LiteralError struct {
	Text string
}

func (e LiteralError) Error() string {
	return fmt.Sprintf("Invalid number literal: '%s'.", e.Text)
}

type UnitError struct {
	Suffix string
}

func (e UnitError) Error() string {
	return fmt.Sprintf("Invalid unit suffix: '%s'.", e.Suffix)
}

type RecursionError struct {
	Limit int
}

func (e RecursionError) Error() string {
	return fmt.Sprintf("Maximum recursion depth of %d exceeded.", e.Limit)
}
