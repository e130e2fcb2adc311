package models

// Expense is a single expense record fetched from the server. Records are
// read-only on the client: they are returned exactly as received, in server
// order, and discarded when the next fetch completes.
type Expense struct {
	// ID is the server-assigned record identifier.
	ID int64 `json:"id"`

	// Category is the user-visible expense category (e.g. "Food").
	Category string `json:"category"`

	// Amount is the expense amount in the account currency.
	Amount float64 `json:"amount"`

	// Date is the expense date as reported by the server (e.g. "2024-01-01").
	// Kept as a string because the client never computes on it.
	Date string `json:"date"`
}
