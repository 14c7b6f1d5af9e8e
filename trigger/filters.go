package trigger

import (
	"errors"
	"fmt"
)

// Sentinel errors for filter validation.
var (
	// ErrUnknownFilter is returned when a filter name is not a recognized
	// trigger field.
	ErrUnknownFilter = errors.New("trigger: unknown filter")

	// ErrInvalidFilterValue is returned when a filter value has the wrong type
	// for its field.
	ErrInvalidFilterValue = errors.New("trigger: invalid filter value")
)

// Filter field names recognized on a workflow trigger. This is the closed
// mapping replacing arbitrary attribute assignment: anything outside this set
// is rejected at registration time.
const (
	FilterFilename             = "filter_filename"
	FilterPath                 = "filter_path"
	FilterMailRule             = "filter_mailrule"
	FilterMatch                = "match"
	FilterMatchingAlgorithm    = "matching_algorithm"
	FilterIsInsensitive        = "is_insensitive"
	FilterHasTags              = "filter_has_tags"
	FilterHasAllTags           = "filter_has_all_tags"
	FilterHasNotTags           = "filter_has_not_tags"
	FilterCustomFieldQuery     = "filter_custom_field_query"
	FilterHasNotCorrespondents = "filter_has_not_correspondents"
	FilterHasNotDocumentTypes  = "filter_has_not_document_types"
	FilterHasNotStoragePaths   = "filter_has_not_storage_paths"
	FilterHasCorrespondent     = "filter_has_correspondent"
	FilterHasDocumentType      = "filter_has_document_type"
	FilterHasStoragePath       = "filter_has_storage_path"
	FilterSources              = "sources"
)

// Filters maps recognized filter names to their values. Values must match the
// field's kind: string, int, bool, or []int depending on the filter.
type Filters map[string]any

// Validate checks every filter name and value against the recognized set.
// It returns the first violation wrapped around ErrUnknownFilter or
// ErrInvalidFilterValue.
func (f Filters) Validate() error {
	probe := New(ConsumptionStarted)
	return f.Apply(&probe)
}

// Names returns the full set of recognized filter names.
func Names() []string {
	return []string{
		FilterFilename,
		FilterPath,
		FilterMailRule,
		FilterMatch,
		FilterMatchingAlgorithm,
		FilterIsInsensitive,
		FilterHasTags,
		FilterHasAllTags,
		FilterHasNotTags,
		FilterCustomFieldQuery,
		FilterHasNotCorrespondents,
		FilterHasNotDocumentTypes,
		FilterHasNotStoragePaths,
		FilterHasCorrespondent,
		FilterHasDocumentType,
		FilterHasStoragePath,
		FilterSources,
	}
}

// Apply sets every filter onto the corresponding trigger field, rejecting
// unrecognized names and mistyped values.
func (f Filters) Apply(t *Trigger) error {
	for name, value := range f {
		if err := applyOne(t, name, value); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(t *Trigger, name string, value any) error {
	switch name {
	case FilterFilename:
		return setString(name, value, &t.FilterFilename)
	case FilterPath:
		return setString(name, value, &t.FilterPath)
	case FilterMatch:
		return setString(name, value, &t.Match)
	case FilterCustomFieldQuery:
		return setString(name, value, &t.FilterCustomFieldQuery)
	case FilterMailRule:
		return setIntPtr(name, value, &t.FilterMailRule)
	case FilterHasCorrespondent:
		return setIntPtr(name, value, &t.FilterHasCorrespondent)
	case FilterHasDocumentType:
		return setIntPtr(name, value, &t.FilterHasDocumentType)
	case FilterHasStoragePath:
		return setIntPtr(name, value, &t.FilterHasStoragePath)
	case FilterMatchingAlgorithm:
		n, err := asInt(name, value)
		if err != nil {
			return err
		}
		t.MatchingAlgorithm = MatchingAlgorithm(n)
		return nil
	case FilterIsInsensitive:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s wants bool, got %T", ErrInvalidFilterValue, name, value)
		}
		t.IsInsensitive = b
		return nil
	case FilterHasTags:
		return setIntSlice(name, value, &t.FilterHasTags)
	case FilterHasAllTags:
		return setIntSlice(name, value, &t.FilterHasAllTags)
	case FilterHasNotTags:
		return setIntSlice(name, value, &t.FilterHasNotTags)
	case FilterHasNotCorrespondents:
		return setIntSlice(name, value, &t.FilterHasNotCorrespondents)
	case FilterHasNotDocumentTypes:
		return setIntSlice(name, value, &t.FilterHasNotDocumentTypes)
	case FilterHasNotStoragePaths:
		return setIntSlice(name, value, &t.FilterHasNotStoragePaths)
	case FilterSources:
		return setIntSlice(name, value, &t.Sources)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}

func setString(name string, value any, dst *string) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s wants string, got %T", ErrInvalidFilterValue, name, value)
	}
	*dst = s
	return nil
}

func setIntPtr(name string, value any, dst **int) error {
	n, err := asInt(name, value)
	if err != nil {
		return err
	}
	*dst = &n
	return nil
}

func setIntSlice(name string, value any, dst *[]int) error {
	switch v := value.(type) {
	case []int:
		*dst = v
		return nil
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			n, err := asInt(name, item)
			if err != nil {
				return err
			}
			out = append(out, n)
		}
		*dst = out
		return nil
	default:
		return fmt.Errorf("%w: %s wants []int, got %T", ErrInvalidFilterValue, name, value)
	}
}

// asInt accepts the integer representations a caller might plausibly hand
// over, including float64 from decoded JSON.
func asInt(name string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %s wants integer, got %v", ErrInvalidFilterValue, name, v)
		}
		return int(v), nil
	case MatchingAlgorithm:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %s wants int, got %T", ErrInvalidFilterValue, name, value)
	}
}
