package model

// DataMode selects how market data requests are served.
type DataMode string

const (
	// LiveMode calls the external provider and falls back to fixtures on failure.
	LiveMode DataMode = "live"
	// DemoMode serves fixtures unconditionally.
	DemoMode DataMode = "demo"
)

func (m DataMode) String() string {
	return string(m)
}
