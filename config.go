package docuhook

// Config holds the configuration for a Hooks instance.
type Config struct {
	// WebhookBaseURL is the externally reachable base URL of this application;
	// each handler's webhook target is this URL plus "/" plus the handler name.
	WebhookBaseURL string

	// NamePrefix is prepended to every handler name to form its remote
	// workflow name, keeping synthesized workflows recognizable next to
	// hand-made ones.
	NamePrefix string

	// WorkflowOrder is the order value assigned to every synthesized workflow.
	WorkflowOrder int

	// SharedSecret, when set, is attached to every synthesized webhook action
	// as a static header and verified by backend adapters on each delivery.
	SharedSecret string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		NamePrefix:    "docuhook-",
		WorkflowOrder: 200,
	}
}
