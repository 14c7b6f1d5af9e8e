package payload

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bodySchema is the JSON Schema every inbound webhook body must satisfy
// before decoding: a flat object of string values. Paperless substitutes
// strings for every placeholder; anything else is a malformed delivery.
var bodySchema = map[string]any{
	"type":                 "object",
	"additionalProperties": map[string]any{"type": "string"},
}

// Validator checks inbound webhook bodies against the placeholder schema.
type Validator struct {
	once     sync.Once
	compiled *jsonschema.Schema
	compErr  error
}

// NewValidator creates a body validator. Compilation is deferred to first use.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the decoded JSON body against the placeholder schema.
// Violations are reported as *Error.
func (v *Validator) Validate(body map[string]any) error {
	compiled, err := v.compile()
	if err != nil {
		return &Error{Op: "validate", Reason: "compile schema", Err: err}
	}

	// jsonschema validates generic values; a map[string]any is already the
	// shape its Validate expects for objects.
	generic := make(map[string]any, len(body))
	for k, val := range body {
		generic[k] = val
	}

	if err := compiled.Validate(generic); err != nil {
		return &Error{Op: "validate", Reason: "schema violation", Err: err}
	}
	return nil
}

func (v *Validator) compile() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		const resource = "docuhook://schema/placeholders"

		c := jsonschema.NewCompiler()
		if err := c.AddResource(resource, bodySchema); err != nil {
			v.compErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		compiled, err := c.Compile(resource)
		if err != nil {
			v.compErr = fmt.Errorf("compile schema: %w", err)
			return
		}
		v.compiled = compiled
	})
	return v.compiled, v.compErr
}
