package payload_test

import (
	"errors"
	"testing"

	"github.com/xraph/docuhook/payload"
)

func TestDecodeSubstitutedFields(t *testing.T) {
	p, err := payload.Decode(map[string]any{
		"doc_title": "Electric bill",
		"doc_url":   "http://paperless:8000/api/documents/42/",
	})
	if err != nil {
		t.Fatal(err)
	}

	if p.DocTitle != "Electric bill" {
		t.Fatalf("doc_title: got %q", p.DocTitle)
	}
	if p.DocURL != "http://paperless:8000/api/documents/42/" {
		t.Fatalf("doc_url: got %q", p.DocURL)
	}
	// Absent keys keep their template markers.
	if p.Correspondent != "{{correspondent}}" {
		t.Fatalf("correspondent default: got %q", p.Correspondent)
	}
	if p.CreatedYear != "{{created_year}}" {
		t.Fatalf("created_year default: got %q", p.CreatedYear)
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	p, err := payload.Decode(map[string]any{
		"doc_title":    "x",
		"some_new_key": "ignored",
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.DocTitle != "x" {
		t.Fatalf("doc_title: got %q", p.DocTitle)
	}
}

func TestDecodeNonStringValue(t *testing.T) {
	_, err := payload.Decode(map[string]any{"doc_title": 42})
	if err == nil {
		t.Fatal("expected error for non-string value")
	}

	var perr *payload.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *payload.Error, got %T", err)
	}
	if perr.Field != "doc_title" {
		t.Fatalf("error field: got %q", perr.Field)
	}
}

func TestTemplateComplete(t *testing.T) {
	params := payload.Template()

	if len(params) != 23 {
		t.Fatalf("expected 23 placeholders, got %d", len(params))
	}
	for name, value := range params {
		if value != "{{"+name+"}}" {
			t.Errorf("placeholder %q: got %q", name, value)
		}
	}
	for _, required := range []string{"doc_url", "doc_title", "created_year", "added_month_name_short"} {
		if _, ok := params[required]; !ok {
			t.Errorf("missing placeholder %q", required)
		}
	}
}

func TestDocumentID(t *testing.T) {
	cases := []struct {
		url    string
		want   int
		wantOK bool
	}{
		{"http://paperless:8000/api/documents/42/", 42, true},
		{"http://paperless:8000/api/documents/42", 42, true},
		{"http://paperless:8000/api/documents/42/download/", 42, true},
		{"http://paperless:8000/api/documents/42/thumb/", 42, true},
		{"http://paperless:8000/documents/7/details", 7, true},
		{"http://paperless:8000/", 0, false},
		{"http://paperless:8000/api/documents/abc/", 0, false},
		{"{{doc_url}}", 0, false},
	}

	for _, tc := range cases {
		p := payload.Placeholders{DocURL: tc.url}
		got, err := p.DocumentID()
		if tc.wantOK {
			if err != nil {
				t.Errorf("%q: unexpected error: %v", tc.url, err)
				continue
			}
			if got != tc.want {
				t.Errorf("%q: got %d, want %d", tc.url, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("%q: expected error, got %d", tc.url, got)
			continue
		}
		var perr *payload.Error
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected *payload.Error, got %T", tc.url, err)
		}
	}
}

func TestValidatorAcceptsStringBody(t *testing.T) {
	v := payload.NewValidator()

	body := map[string]any{
		"doc_title": "x",
		"doc_url":   "http://paperless:8000/api/documents/1/",
	}
	if err := v.Validate(body); err != nil {
		t.Fatal(err)
	}
}

func TestValidatorRejectsNonStringValue(t *testing.T) {
	v := payload.NewValidator()

	err := v.Validate(map[string]any{"doc_title": 1})
	if err == nil {
		t.Fatal("expected schema violation")
	}
	var perr *payload.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *payload.Error, got %T", err)
	}
}

func TestValidatorEmptyBody(t *testing.T) {
	v := payload.NewValidator()

	if err := v.Validate(map[string]any{}); err != nil {
		t.Fatal("empty object should validate, got:", err)
	}
}
