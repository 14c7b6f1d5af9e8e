// Package payload decodes the flat keyed-string body Paperless delivers to a
// webhook into the typed placeholder record, and extracts document identity
// from it.
package payload

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Placeholders is the fixed schema of substitutable fields a webhook delivery
// carries. Fields the server has not substituted for a given trigger type
// keep their literal "{{name}}" template markers.
type Placeholders struct {
	// General placeholders, present for every trigger type.
	Correspondent       string `json:"correspondent"`
	DocumentType        string `json:"document_type"`
	OwnerUsername       string `json:"owner_username"`
	Added               string `json:"added"`
	AddedYear           string `json:"added_year"`
	AddedYearShort      string `json:"added_year_short"`
	AddedMonth          string `json:"added_month"`
	AddedMonthName      string `json:"added_month_name"`
	AddedMonthNameShort string `json:"added_month_name_short"`
	AddedDay            string `json:"added_day"`
	AddedTime           string `json:"added_time"`
	OriginalFilename    string `json:"original_filename"`
	Filename            string `json:"filename"`
	DocTitle            string `json:"doc_title"`

	// Added/updated-only placeholders.
	Created               string `json:"created"`
	CreatedYear           string `json:"created_year"`
	CreatedYearShort      string `json:"created_year_short"`
	CreatedMonth          string `json:"created_month"`
	CreatedMonthName      string `json:"created_month_name"`
	CreatedMonthNameShort string `json:"created_month_name_short"`
	CreatedDay            string `json:"created_day"`
	CreatedTime           string `json:"created_time"`
	DocURL                string `json:"doc_url"`
}

// placeholderNames lists every placeholder key, in template order.
var placeholderNames = []string{
	"correspondent",
	"document_type",
	"owner_username",
	"added",
	"added_year",
	"added_year_short",
	"added_month",
	"added_month_name",
	"added_month_name_short",
	"added_day",
	"added_time",
	"original_filename",
	"filename",
	"doc_title",
	"created",
	"created_year",
	"created_year_short",
	"created_month",
	"created_month_name",
	"created_month_name_short",
	"created_day",
	"created_time",
	"doc_url",
}

// Defaults returns a Placeholders with every field set to its literal
// template marker, the value the remote server substitutes at fire time.
func Defaults() Placeholders {
	var p Placeholders
	raw := make(map[string]string, len(placeholderNames))
	for _, name := range placeholderNames {
		raw[name] = "{{" + name + "}}"
	}
	b, err := json.Marshal(raw)
	if err != nil {
		panic("payload: marshal defaults: " + err.Error())
	}
	if err := json.Unmarshal(b, &p); err != nil {
		panic("payload: unmarshal defaults: " + err.Error())
	}
	return p
}

// Template returns the complete placeholder template as the flat string map
// a webhook action's params field expects.
func Template() map[string]string {
	params := make(map[string]string, len(placeholderNames))
	for _, name := range placeholderNames {
		params[name] = "{{" + name + "}}"
	}
	return params
}

// Decode converts an inbound webhook body into a Placeholders record.
// Unknown keys are ignored, absent keys keep their template-marker defaults,
// and any non-string value fails with *Error.
func Decode(body map[string]any) (*Placeholders, error) {
	for key, value := range body {
		if _, ok := value.(string); !ok && value != nil {
			return nil, &Error{Op: "decode", Field: key, Reason: fmt.Sprintf("want string, got %T", value)}
		}
	}

	p := Defaults()
	b, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Op: "decode", Reason: "marshal body", Err: err}
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, &Error{Op: "decode", Reason: "unmarshal body", Err: err}
	}
	return &p, nil
}

// DocumentID extracts the numeric document identifier from the doc_url
// placeholder. The ID is the last non-empty path segment when it is numeric
// (".../documents/42/" yields 42), otherwise the second-to-last, covering
// suffixed forms like ".../documents/42/download/". Fails with *Error when
// neither segment is numeric.
func (p *Placeholders) DocumentID() (int, error) {
	u, err := url.Parse(p.DocURL)
	if err != nil {
		return 0, &Error{Op: "document_id", Field: "doc_url", Reason: "unparseable URL", Err: err}
	}

	var segments []string
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	for i := len(segments) - 1; i >= 0 && i >= len(segments)-2; i-- {
		if docID, err := strconv.Atoi(segments[i]); err == nil {
			return docID, nil
		}
	}
	return 0, &Error{Op: "document_id", Field: "doc_url", Reason: fmt.Sprintf("no numeric document segment in %q", p.DocURL)}
}
