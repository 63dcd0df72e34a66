package errors

import "fmt"

// HeaderNotFoundError is returned when a selected column or a filter names
// a header that is not part of the CSV header line
type HeaderNotFoundError struct {
	Header string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("Header '%s' not found in CSV file/string", e.Header)
}

// InvalidFilterError is returned for a filter definition with no recognised operator
type InvalidFilterError struct {
	Definition string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("Invalid filter: '%s'", e.Definition)
}

// UnreadableSourceError is returned when the CSV file cannot be opened or read
type UnreadableSourceError struct {
	Path string
	Err  error
}

func (e *UnreadableSourceError) Error() string {
	return fmt.Sprintf("Unable to open CSV file '%s'", e.Path)
}

func (e *UnreadableSourceError) Unwrap() error {
	return e.Err
}
