package clapi

// Config holds configuration for the content attribute service.
type Config struct {
	// BaseURL is the root of the attribute service API.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:9000"`
	// Token is sent as a bearer token on every request.
	Token string `mapstructure:"token" default:""`
	// RequestsPerSecond throttles lookups. Zero or less disables throttling.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"10"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
