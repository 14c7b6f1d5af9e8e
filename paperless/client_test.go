package paperless_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xraph/docuhook/paperless"
	"github.com/xraph/docuhook/payload"
	"github.com/xraph/docuhook/trigger"
	"github.com/xraph/docuhook/workflow"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*paperless.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := paperless.NewClient(srv.URL, "test-token")
	if err != nil {
		t.Fatal(err)
	}
	return c, srv
}

func TestNewClientValidation(t *testing.T) {
	if _, err := paperless.NewClient("http://paperless:8000", ""); !errors.Is(err, paperless.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if _, err := paperless.NewClient("not a url", "tok"); !errors.Is(err, paperless.ErrInvalidBaseURL) {
		t.Fatalf("expected ErrInvalidBaseURL, got %v", err)
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotAccept string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode(paperless.Page[workflow.Workflow]{})
	})

	if _, err := c.Workflows(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Token test-token" {
		t.Fatalf("Authorization: got %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept: got %q", gotAccept)
	}
}

func TestListWorkflowsPaginated(t *testing.T) {
	next := "has-more"

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		switch page {
		case "1":
			json.NewEncoder(w).Encode(paperless.Page[workflow.Workflow]{
				Count:   3,
				Next:    &next,
				Results: []workflow.Workflow{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
			})
		case "2":
			json.NewEncoder(w).Encode(paperless.Page[workflow.Workflow]{
				Count:   3,
				Results: []workflow.Workflow{{ID: 3, Name: "c"}},
			})
		default:
			t.Errorf("unexpected page %q", page)
			http.NotFound(w, r)
		}
	})

	wfs, err := c.ListWorkflows(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(wfs) != 3 {
		t.Fatalf("expected 3 workflows, got %d", len(wfs))
	}
	if wfs[2].Name != "c" {
		t.Fatalf("last workflow: got %q", wfs[2].Name)
	}
}

func TestListWorkflowNames(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(paperless.Page[workflow.Workflow]{
			Count:   2,
			Results: []workflow.Workflow{{ID: 1, Name: "docuhook-a"}, {ID: 2, Name: "manual"}},
		})
	})

	names, err := c.ListWorkflowNames(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if _, ok := names["docuhook-a"]; !ok {
		t.Fatal("missing docuhook-a")
	}
}

func TestCreateWorkflow(t *testing.T) {
	var received workflow.Workflow

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		if r.URL.Path != "/api/workflows/" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type: got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Error(err)
		}
		received.ID = 17
		json.NewEncoder(w).Encode(received)
	})

	wf := &workflow.Workflow{
		Name:     "docuhook-invoices",
		Order:    200,
		Enabled:  true,
		Triggers: []trigger.Trigger{trigger.New(trigger.DocumentAdded)},
		Actions: []workflow.Action{{
			Type: workflow.ActionWebhookWithConfig,
			Webhook: &workflow.WebhookConfig{
				URL:       "http://app:9000/hooks/invoices",
				UseParams: true,
				AsJSON:    true,
				Params:    payload.Template(),
			},
		}},
	}

	created, err := c.CreateWorkflow(context.Background(), wf)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != 17 {
		t.Fatalf("created ID: got %d", created.ID)
	}
	if received.Name != "docuhook-invoices" {
		t.Fatalf("posted name: got %q", received.Name)
	}
	if len(received.Actions) != 1 || received.Actions[0].Type != workflow.ActionWebhookWithConfig {
		t.Fatalf("posted actions: %+v", received.Actions)
	}
	if !received.Actions[0].Webhook.UseParams || !received.Actions[0].Webhook.AsJSON {
		t.Fatal("webhook config should use templated JSON params")
	}
}

func TestDeleteWorkflow(t *testing.T) {
	var gotMethod, gotPath string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.DeleteWorkflow(context.Background(), 17); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("method: got %s", gotMethod)
	}
	if gotPath != "/api/workflows/17/" {
		t.Fatalf("path: got %s", gotPath)
	}
}

func TestAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream exploded")
	})

	_, err := c.ListWorkflows(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *paperless.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("status: got %d", apiErr.StatusCode)
	}
	if apiErr.Body != "upstream exploded" {
		t.Fatalf("body: got %q", apiErr.Body)
	}
}

func TestGetDocument(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents/42/" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(paperless.Document{ID: 42, Title: "Electric bill"})
	})

	doc, err := c.Document(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "Electric bill" {
		t.Fatalf("title: got %q", doc.Title)
	}
}

func TestDownloadDocument(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents/42/download/" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		w.Write([]byte("%PDF-1.7 content"))
	})

	data, err := c.DownloadDocument(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "%PDF-1.7 content" {
		t.Fatalf("content: got %q", data)
	}
}
