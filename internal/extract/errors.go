package extract

// SchemaError marks a model response whose body could not be parsed as JSON
// or did not match the declared names shape. It is distinct from transport
// and provider failures so callers can tell "zero names found" apart from
// "the response was garbage".
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return e.Err.Error()
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
