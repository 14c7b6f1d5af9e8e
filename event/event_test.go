package event_test

import (
	"context"
	"testing"

	"github.com/xraph/docuhook/event"
	"github.com/xraph/docuhook/paperless"
	"github.com/xraph/docuhook/payload"
	"github.com/xraph/docuhook/trigger"
)

type fakeFetcher struct {
	doc        *paperless.Document
	content    []byte
	fetchedID  int
	downloaded int
}

func (f *fakeFetcher) Document(_ context.Context, docID int) (*paperless.Document, error) {
	f.fetchedID = docID
	return f.doc, nil
}

func (f *fakeFetcher) DownloadDocument(_ context.Context, docID int) ([]byte, error) {
	f.downloaded = docID
	return f.content, nil
}

func TestNewVariantPerTrigger(t *testing.T) {
	p := &payload.Placeholders{}

	cases := []struct {
		trig         trigger.Type
		wantDocument bool
	}{
		{trigger.ConsumptionStarted, false},
		{trigger.DocumentAdded, true},
		{trigger.DocumentUpdated, true},
		{trigger.Scheduled, false},
	}

	for _, tc := range cases {
		evt := event.New(tc.trig, p, &fakeFetcher{})
		if evt.Trigger() != tc.trig {
			t.Errorf("%s: trigger mismatch", tc.trig)
		}
		_, isDoc := evt.(*event.DocumentEvent)
		if isDoc != tc.wantDocument {
			t.Errorf("%s: document-bound = %v, want %v", tc.trig, isDoc, tc.wantDocument)
		}
	}
}

func TestPayloadEventExposesPayload(t *testing.T) {
	p := &payload.Placeholders{DocTitle: "scan"}
	evt := event.New(trigger.ConsumptionStarted, p, nil)

	if evt.Payload() != p {
		t.Fatal("payload should be the decoded record, unchanged")
	}
}

func TestDocumentEventLazyFetch(t *testing.T) {
	fetcher := &fakeFetcher{
		doc:     &paperless.Document{ID: 42, Title: "Electric bill"},
		content: []byte("%PDF-1.7"),
	}
	p := &payload.Placeholders{DocURL: "http://paperless:8000/api/documents/42/"}

	evt := event.New(trigger.DocumentAdded, p, fetcher).(*event.DocumentEvent)

	// Construction alone fetches nothing.
	if fetcher.fetchedID != 0 || fetcher.downloaded != 0 {
		t.Fatal("document must not be fetched before it is asked for")
	}

	docID, err := evt.DocumentID()
	if err != nil {
		t.Fatal(err)
	}
	if docID != 42 {
		t.Fatalf("document ID: got %d", docID)
	}

	doc, err := evt.Document(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "Electric bill" {
		t.Fatalf("title: got %q", doc.Title)
	}
	if fetcher.fetchedID != 42 {
		t.Fatalf("fetched ID: got %d", fetcher.fetchedID)
	}

	content, err := evt.Download(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "%PDF-1.7" {
		t.Fatalf("content: got %q", content)
	}
	if fetcher.downloaded != 42 {
		t.Fatalf("downloaded ID: got %d", fetcher.downloaded)
	}
}

func TestDocumentEventBadDocURL(t *testing.T) {
	p := &payload.Placeholders{DocURL: "{{doc_url}}"}
	evt := event.New(trigger.DocumentUpdated, p, &fakeFetcher{}).(*event.DocumentEvent)

	if _, err := evt.DocumentID(); err == nil {
		t.Fatal("expected error for unsubstituted doc_url")
	}
	if _, err := evt.Document(context.Background()); err == nil {
		t.Fatal("Document should fail when the ID cannot be extracted")
	}
}
