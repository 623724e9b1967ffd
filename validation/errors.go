// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package validation

import "fmt"

// ValidationError is one of IncorrectOutputs, MaxComponentsExceeded,
// InvalidComponentInterface, or EmptyTruthTable.
type ValidationError interface {
	error
	isValidationError()
}

// IncorrectOutputs reports a truth-table row whose observed outputs didn't
// match the expected ones.
type IncorrectOutputs struct {
	Input    []bool
	Expected []bool
	Actual   []bool
}

func (IncorrectOutputs) isValidationError() {}

func (e IncorrectOutputs) Error() string {
	return fmt.Sprintf("input %v: expected outputs %v, got %v", e.Input, e.Expected, e.Actual)
}

// MaxComponentsExceeded reports that the elaborated harness circuit used
// more components than CombinationalRequirements.MaxComponents allowed.
type MaxComponentsExceeded struct {
	Used int
}

func (MaxComponentsExceeded) isValidationError() {}

func (e MaxComponentsExceeded) Error() string {
	return fmt.Sprintf("harness circuit elaborates to %d components, exceeding the configured maximum", e.Used)
}

// InvalidComponentInterface reports that the component under test's
// declared arity doesn't match the truth table's row width.
type InvalidComponentInterface struct {
	IsInput  bool
	Expected int
	Actual   int
}

func (InvalidComponentInterface) isValidationError() {}

func (e InvalidComponentInterface) Error() string {
	side := "output"
	if e.IsInput {
		side = "input"
	}
	return fmt.Sprintf("truth table %s width %d does not match component arity %d", side, e.Actual, e.Expected)
}

// EmptyTruthTable reports that CombinationalRequirements.TruthTable had no
// rows to validate against.
type EmptyTruthTable struct{}

func (EmptyTruthTable) isValidationError() {}

func (EmptyTruthTable) Error() string { return "truth table is empty" }

// ValidationReport is the result of TestCombinational: an empty Errors
// slice means the component matched its truth table.
type ValidationReport struct {
	Errors []ValidationError
}
