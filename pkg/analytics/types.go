package analytics

// NoJunction is the display name of the group of records without a junction.
const NoJunction = "(none)"

// JunctionSummary holds the lighting-column counts for one junction.
type JunctionSummary struct {
	Junction  string `json:"junction"`
	Null      bool   `json:"null,omitempty"`
	Total     int    `json:"total"`
	Scheduled int    `json:"scheduled"`
}

// DisplayName returns the junction id, or NoJunction for the null group.
func (s JunctionSummary) DisplayName() string {
	if s.Null {
		return NoJunction
	}
	return s.Junction
}

// Retained is the number of columns not scheduled for change.
func (s JunctionSummary) Retained() int {
	return s.Total - s.Scheduled
}
