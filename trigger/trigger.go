// Package trigger defines the workflow trigger wire type and the closed set
// of filter fields Paperless recognizes on it.
package trigger

// Type enumerates the document lifecycle events a workflow can fire on.
// The set is fixed by the Paperless workflow API.
type Type int

// Trigger types, in Paperless wire encoding.
const (
	ConsumptionStarted Type = 1
	DocumentAdded      Type = 2
	DocumentUpdated    Type = 3
	Scheduled          Type = 4
)

// String returns the human-readable trigger type name.
func (t Type) String() string {
	switch t {
	case ConsumptionStarted:
		return "consumption_started"
	case DocumentAdded:
		return "document_added"
	case DocumentUpdated:
		return "document_updated"
	case Scheduled:
		return "scheduled"
	default:
		return "unknown"
	}
}

// Valid reports whether t is a known trigger type.
func (t Type) Valid() bool {
	return t >= ConsumptionStarted && t <= Scheduled
}

// MatchingAlgorithm selects how Paperless evaluates the "match" filter.
type MatchingAlgorithm int

// Matching algorithms, in Paperless wire encoding.
const (
	MatchNone      MatchingAlgorithm = 0
	MatchContains  MatchingAlgorithm = 1
	MatchRegex     MatchingAlgorithm = 2
	MatchExact     MatchingAlgorithm = 3
	MatchFuzzy     MatchingAlgorithm = 4
	MatchIContains MatchingAlgorithm = 5
	MatchAuto      MatchingAlgorithm = 6
)

// Trigger is the Paperless workflow trigger wire object: an event type plus
// the filter fields constraining when it fires.
type Trigger struct {
	ID      int   `json:"id,omitempty"`
	Type    Type  `json:"type"`
	Sources []int `json:"sources"`

	FilterFilename string `json:"filter_filename,omitempty"`
	FilterPath     string `json:"filter_path,omitempty"`
	FilterMailRule *int   `json:"filter_mailrule,omitempty"`

	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm"`
	Match             string            `json:"match,omitempty"`
	IsInsensitive     bool              `json:"is_insensitive"`

	FilterHasTags    []int `json:"filter_has_tags"`
	FilterHasAllTags []int `json:"filter_has_all_tags"`
	FilterHasNotTags []int `json:"filter_has_not_tags"`

	FilterCustomFieldQuery string `json:"filter_custom_field_query,omitempty"`

	FilterHasNotCorrespondents []int `json:"filter_has_not_correspondents"`
	FilterHasNotDocumentTypes  []int `json:"filter_has_not_document_types"`
	FilterHasNotStoragePaths   []int `json:"filter_has_not_storage_paths"`

	FilterHasCorrespondent *int `json:"filter_has_correspondent,omitempty"`
	FilterHasDocumentType  *int `json:"filter_has_document_type,omitempty"`
	FilterHasStoragePath   *int `json:"filter_has_storage_path,omitempty"`
}

// New returns a trigger of the given type with Paperless defaults applied.
func New(t Type) Trigger {
	return Trigger{
		Type:                       t,
		Sources:                    []int{},
		IsInsensitive:              true,
		FilterHasTags:              []int{},
		FilterHasAllTags:           []int{},
		FilterHasNotTags:           []int{},
		FilterHasNotCorrespondents: []int{},
		FilterHasNotDocumentTypes:  []int{},
		FilterHasNotStoragePaths:   []int{},
	}
}
