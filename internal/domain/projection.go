package domain

// Snapshot is one reported period of a projection. Period is a year number under yearly
// granularity and a month number under monthly granularity; it is serialized as "year"
// so chart consumers can use one axis key for both.
type Snapshot struct {
	Period              int   `json:"year" yaml:"year"`
	InvestedCapital     int64 `json:"investedCapital" yaml:"invested_capital"`
	AccumulatedInterest int64 `json:"accumulatedInterest" yaml:"accumulated_interest"`
	TotalValue          int64 `json:"totalValue" yaml:"total_value"`
	RealValue           int64 `json:"realValue" yaml:"real_value"`
}

// Summary mirrors the final snapshot of a projection.
type Summary struct {
	Total    int64 `json:"total" yaml:"total"`
	Real     int64 `json:"real" yaml:"real"`
	Invested int64 `json:"invested" yaml:"invested"`
	Interest int64 `json:"interest" yaml:"interest"`
}

// ProjectionResult is everything derived from one ProjectionInput.
type ProjectionResult struct {
	Name             string          `json:"name,omitempty" yaml:"name,omitempty"`
	Input            ProjectionInput `json:"input" yaml:"input"`
	Snapshots        []Snapshot      `json:"data" yaml:"data"`
	Summary          Summary         `json:"summary" yaml:"summary"`
	RealRateOfReturn float64         `json:"realRateOfReturn" yaml:"real_rate_of_return"`
}

// Last returns the final snapshot and whether one exists.
func (r *ProjectionResult) Last() (Snapshot, bool) {
	if r == nil || len(r.Snapshots) == 0 {
		return Snapshot{}, false
	}
	return r.Snapshots[len(r.Snapshots)-1], true
}

// ProjectionReport groups the results of several scenarios, in configuration order.
type ProjectionReport struct {
	Scenarios []ProjectionResult `json:"scenarios" yaml:"scenarios"`
}
