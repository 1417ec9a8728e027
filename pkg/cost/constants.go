package cost

// Formatting of projected savings.
const (
	// CurrencyFormat is the go-humanize pattern: comma thousands, two decimals.
	CurrencyFormat = "#,###.##"
	CentsPerUnit   = 100.0
)
