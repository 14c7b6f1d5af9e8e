package trigger_test

import (
	"errors"
	"testing"

	"github.com/xraph/docuhook/trigger"
)

func TestTypeString(t *testing.T) {
	cases := map[trigger.Type]string{
		trigger.ConsumptionStarted: "consumption_started",
		trigger.DocumentAdded:      "document_added",
		trigger.DocumentUpdated:    "document_updated",
		trigger.Scheduled:          "scheduled",
		trigger.Type(99):           "unknown",
	}
	for tt, want := range cases {
		if got := tt.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", tt, got, want)
		}
	}
}

func TestTypeValid(t *testing.T) {
	if !trigger.DocumentAdded.Valid() {
		t.Fatal("DocumentAdded should be valid")
	}
	if trigger.Type(0).Valid() {
		t.Fatal("zero type should be invalid")
	}
	if trigger.Type(5).Valid() {
		t.Fatal("out-of-range type should be invalid")
	}
}

func TestNewDefaults(t *testing.T) {
	trg := trigger.New(trigger.DocumentAdded)

	if trg.Type != trigger.DocumentAdded {
		t.Fatalf("type: got %d", trg.Type)
	}
	if !trg.IsInsensitive {
		t.Fatal("new triggers should default to case-insensitive matching")
	}
	// Slice fields must serialize as [], not null.
	if trg.Sources == nil || trg.FilterHasTags == nil || trg.FilterHasAllTags == nil ||
		trg.FilterHasNotTags == nil || trg.FilterHasNotCorrespondents == nil ||
		trg.FilterHasNotDocumentTypes == nil || trg.FilterHasNotStoragePaths == nil {
		t.Fatal("slice fields should be initialized to empty slices")
	}
}

func TestFiltersApply(t *testing.T) {
	f := trigger.Filters{
		trigger.FilterFilename:          "*.pdf",
		trigger.FilterPath:              "/inbox/*",
		trigger.FilterMatch:             "invoice",
		trigger.FilterMatchingAlgorithm: trigger.MatchIContains,
		trigger.FilterIsInsensitive:     false,
		trigger.FilterHasTags:           []int{1, 2},
		trigger.FilterHasCorrespondent:  7,
	}

	trg := trigger.New(trigger.DocumentAdded)
	if err := f.Apply(&trg); err != nil {
		t.Fatal(err)
	}

	if trg.FilterFilename != "*.pdf" {
		t.Fatalf("filename: got %q", trg.FilterFilename)
	}
	if trg.FilterPath != "/inbox/*" {
		t.Fatalf("path: got %q", trg.FilterPath)
	}
	if trg.Match != "invoice" {
		t.Fatalf("match: got %q", trg.Match)
	}
	if trg.MatchingAlgorithm != trigger.MatchIContains {
		t.Fatalf("matching algorithm: got %d", trg.MatchingAlgorithm)
	}
	if trg.IsInsensitive {
		t.Fatal("is_insensitive should have been overridden to false")
	}
	if len(trg.FilterHasTags) != 2 || trg.FilterHasTags[0] != 1 {
		t.Fatalf("has_tags: got %v", trg.FilterHasTags)
	}
	if trg.FilterHasCorrespondent == nil || *trg.FilterHasCorrespondent != 7 {
		t.Fatalf("has_correspondent: got %v", trg.FilterHasCorrespondent)
	}
}

func TestFiltersUnknownName(t *testing.T) {
	f := trigger.Filters{"filter_bogus": "x"}

	err := f.Validate()
	if !errors.Is(err, trigger.ErrUnknownFilter) {
		t.Fatalf("expected ErrUnknownFilter, got %v", err)
	}
}

func TestFiltersWrongType(t *testing.T) {
	cases := []trigger.Filters{
		{trigger.FilterFilename: 42},
		{trigger.FilterIsInsensitive: "yes"},
		{trigger.FilterHasTags: "not-a-slice"},
		{trigger.FilterHasCorrespondent: "seven"},
	}
	for i, f := range cases {
		if err := f.Validate(); !errors.Is(err, trigger.ErrInvalidFilterValue) {
			t.Errorf("case %d: expected ErrInvalidFilterValue, got %v", i, err)
		}
	}
}

func TestFiltersDecodedJSONValues(t *testing.T) {
	// Values as they arrive from decoded JSON: float64 numbers, []any slices.
	f := trigger.Filters{
		trigger.FilterHasCorrespondent: float64(3),
		trigger.FilterHasTags:          []any{float64(1), float64(2)},
	}

	trg := trigger.New(trigger.ConsumptionStarted)
	if err := f.Apply(&trg); err != nil {
		t.Fatal(err)
	}
	if trg.FilterHasCorrespondent == nil || *trg.FilterHasCorrespondent != 3 {
		t.Fatalf("has_correspondent: got %v", trg.FilterHasCorrespondent)
	}
	if len(trg.FilterHasTags) != 2 || trg.FilterHasTags[1] != 2 {
		t.Fatalf("has_tags: got %v", trg.FilterHasTags)
	}
}

func TestFiltersFractionalNumberRejected(t *testing.T) {
	f := trigger.Filters{trigger.FilterHasCorrespondent: 3.5}

	if err := f.Validate(); !errors.Is(err, trigger.ErrInvalidFilterValue) {
		t.Fatalf("expected ErrInvalidFilterValue for fractional number, got %v", err)
	}
}

func TestNamesCoversApply(t *testing.T) {
	// Every published filter name must be applicable.
	for _, name := range trigger.Names() {
		trg := trigger.New(trigger.Scheduled)
		f := trigger.Filters{name: sampleValue(name)}
		if err := f.Apply(&trg); err != nil {
			t.Errorf("filter %q rejected: %v", name, err)
		}
	}
}

func sampleValue(name string) any {
	switch name {
	case trigger.FilterFilename, trigger.FilterPath, trigger.FilterMatch, trigger.FilterCustomFieldQuery:
		return "x"
	case trigger.FilterIsInsensitive:
		return true
	case trigger.FilterMailRule, trigger.FilterMatchingAlgorithm,
		trigger.FilterHasCorrespondent, trigger.FilterHasDocumentType, trigger.FilterHasStoragePath:
		return 1
	default:
		return []int{1}
	}
}
