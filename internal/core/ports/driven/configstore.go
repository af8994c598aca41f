package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Config keys used by octoview.
const (
	// ConfigClientID is the OAuth app client ID.
	ConfigClientID = "oauth.client_id"

	// ConfigClientSecret is the OAuth app client secret.
	ConfigClientSecret = "oauth.client_secret"

	// ConfigPageSize is the per-page size for list requests.
	ConfigPageSize = "browse.page_size"

	// ConfigMinStars is the star floor for the popular feed query.
	ConfigMinStars = "browse.popular_min_stars"

	// ConfigAPIBaseURL overrides the GitHub API base URL (for testing and
	// GitHub Enterprise).
	ConfigAPIBaseURL = "api.base_url"
)
