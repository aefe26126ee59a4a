package domain

// GraphPeriod selects one of the pre-rendered consumption graphs.
type GraphPeriod string

const (
	// GraphDaily is the per-day consumption graph.
	GraphDaily GraphPeriod = "daily"
	// GraphMonthly is the per-month consumption graph.
	GraphMonthly GraphPeriod = "monthly"
)

// Graph points at a consumption graph image. Exactly one of URL and
// LocalPath is set: URL when the provider returned one, LocalPath when a
// pre-rendered file on disk is the fallback.
type Graph struct {
	Period    GraphPeriod
	URL       string
	LocalPath string
}
