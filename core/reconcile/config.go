package reconcile

// DefaultThreshold is the largest distance still accepted into the output table.
const DefaultThreshold = 2

// Config holds the tunables of a reconciliation run.
type Config struct {
	// Threshold is the maximum accepted distance.
	Threshold int `mapstructure:"threshold" default:"2"`
	// MaxPages aborts the run if the file stream has not ended after this many pages. Zero disables the limit.
	MaxPages int `mapstructure:"max_pages" default:"0"`
}
