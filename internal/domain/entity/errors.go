package entity

import "fmt"

// LoadError means the dataset could not be read or does not match the expected schema.
type LoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Source, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ParseError means a timestamp field could not be parsed.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %s %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DomainError means a categorical field holds a value outside its encoding set.
type DomainError struct {
	Row    int
	Column string
	Value  string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("row %d: %s value %q is outside the known encoding", e.Row, e.Column, e.Value)
}

// SchemaError means an aggregation referenced an unknown dimension or kind.
type SchemaError struct {
	Field string
	Value string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Value)
}
