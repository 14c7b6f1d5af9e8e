// Package workflow defines the Paperless workflow wire types: a named rule
// pairing triggers with actions. Docuhook only ever synthesizes workflows
// with exactly one trigger and one webhook action.
package workflow

import "github.com/xraph/docuhook/trigger"

// ActionType enumerates workflow action kinds in Paperless wire encoding.
type ActionType int

// Action types.
const (
	ActionAssignment        ActionType = 1
	ActionRemoval           ActionType = 2
	ActionWebhook           ActionType = 3
	ActionWebhookWithConfig ActionType = 4
)

// WebhookConfig configures a webhook action: the outbound POST Paperless
// performs when the workflow fires.
type WebhookConfig struct {
	ID int `json:"id,omitempty"`

	// URL is the delivery target. Docuhook derives it from the webhook base
	// URL plus the handler name.
	URL string `json:"url"`

	// UseParams selects templated parameter delivery over a raw body.
	UseParams bool `json:"use_params"`

	// AsJSON delivers the parameters as a JSON object rather than form data.
	AsJSON bool `json:"as_json"`

	// Params is the substitutable parameter template. Docuhook always sends
	// the complete placeholder template so every field is available to the
	// receiving handler regardless of trigger type.
	Params map[string]string `json:"params"`

	// Body is the raw request body, unused when UseParams is set.
	Body string `json:"body"`

	// Headers are extra HTTP headers attached to each delivery.
	Headers map[string]string `json:"headers,omitempty"`

	// IncludeDocument attaches the document file to the delivery. Docuhook
	// never sets this; document content is fetched lazily over the API.
	IncludeDocument bool `json:"include_document"`
}

// Action is a workflow action wire object.
type Action struct {
	ID      int            `json:"id,omitempty"`
	Type    ActionType     `json:"type"`
	Webhook *WebhookConfig `json:"webhook,omitempty"`
}

// Workflow is the Paperless workflow wire object.
type Workflow struct {
	ID       int               `json:"id,omitempty"`
	Name     string            `json:"name"`
	Order    int               `json:"order"`
	Enabled  bool              `json:"enabled"`
	Triggers []trigger.Trigger `json:"triggers"`
	Actions  []Action          `json:"actions"`
}
