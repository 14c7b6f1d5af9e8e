package payload

// Error indicates a malformed or schema-incompatible webhook body, or a
// doc_url placeholder that cannot be parsed into a document ID.
type Error struct {
	Op     string // "decode", "validate", or "document_id"
	Field  string // offending key, when known
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := "payload: " + e.Op
	if e.Field != "" {
		msg += " " + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }
