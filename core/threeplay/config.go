package threeplay

// Config holds configuration for the transcription vendor API.
type Config struct {
	// BaseURL is the root of the vendor API.
	BaseURL string `mapstructure:"base_url" default:"https://api.3playmedia.com"`
	// APIKey authenticates every request.
	APIKey string `mapstructure:"api_key" default:""`
	// PerPage is the number of files requested per page.
	PerPage int `mapstructure:"per_page" default:"100"`
	// RequestsPerSecond throttles calls to the vendor. Zero or less disables throttling.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"5"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
