package domain

// Timeframe selects the aggregation window for dashboard charts.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

// DashboardSummary is the top-level rollup for today's production activity.
type DashboardSummary struct {
	BulkInputsToday               int64 `json:"bulkInputsToday"`
	UnitsCompletedToday           int64 `json:"unitsCompletedToday"`
	FinishedGoodsAwaitingGatePass int64 `json:"finishedGoodsAwaitingGatePass"`
	ShippedViaGatePassToday       int64 `json:"shippedViaGatePassToday"`
}

// ProcessVolume is one bar of the dry-process chart: a process name with the
// summed approved quantity over the window.
type ProcessVolume struct {
	Name      string `db:"name" json:"name"`
	Processed int64  `db:"processed" json:"processed"`
}
