package errors

import (
	"fmt"
	"strings"
)

// FileNotFoundError occurs when an input table does not exist
type FileNotFoundError struct {
	Path string
	Err  error
}

// Error returns a textual representation of this FileNotFoundError
func (e FileNotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s. Please enter a valid file path for <data_set>", e.Path)
}

// Unwrap returns the underlying cause of this FileNotFoundError, if any
func (e FileNotFoundError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError occurs when a parameter is not an integer, or is out of range
type InvalidArgumentError struct {
	Name   string // Name is the name of the offending parameter, e.g. <number_of_genes>
	Value  string // Value is the textual form of the offending value
	Reason string // Reason describes the constraint which was violated
}

// Error returns a textual representation of this InvalidArgumentError
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid input %q for %s: %s", e.Value, e.Name, e.Reason)
}

// EmptyInputError occurs when an input table has no data rows
type EmptyInputError struct {
	Path string
}

// Error returns a textual representation of this EmptyInputError
func (e EmptyInputError) Error() string {
	if e.Path == "" {
		return "Table is empty or contains only a header line"
	}
	return fmt.Sprintf("File %s is empty or contains only one line. Please enter a valid file path for <data_set>", e.Path)
}

// LabelNotFoundError occurs when none of the candidate label column names are present in a Table
type LabelNotFoundError struct {
	Candidates []string
}

// Error returns a textual representation of this LabelNotFoundError
func (e LabelNotFoundError) Error() string {
	return fmt.Sprintf("No label column found. Expected one of: %s", strings.Join(e.Candidates, ", "))
}

// InsufficientClassSizeError occurs when a class has too few members to be represented in every partition of a split
type InsufficientClassSizeError struct {
	Class string
	Size  int
	Min   int
}

// Error returns a textual representation of this InsufficientClassSizeError
func (e InsufficientClassSizeError) Error() string {
	return fmt.Sprintf("Class %q has %d member(s), but a stratified split requires at least %d per class", e.Class, e.Size, e.Min)
}

// WriteFailureError occurs when an output table cannot be persisted
type WriteFailureError struct {
	Path string
	Err  error
}

// Error returns a textual representation of this WriteFailureError
func (e WriteFailureError) Error() string {
	return fmt.Sprintf("Error saving %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause of this WriteFailureError
func (e WriteFailureError) Unwrap() error {
	return e.Err
}

// IncompatibleRowError occurs when a Row's width does not match an expected Schema
type IncompatibleRowError struct {
	Row      int // Row is the 1-based data row number (the header is row 0)
	Width    int
	Expected int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row %d has %d fields, which is not compatible with a Schema of %d columns", e.Row, e.Width, e.Expected)
}
