package common

// Storage keys of the three persisted state namespaces. Each key holds a
// single JSON document that is replaced as a whole on every write.
const (
	// ActiveUserKey holds the currently logged-in user, if any.
	ActiveUserKey = "ecotrack_user"
	// RosterKey holds the full list of registered users.
	RosterKey = "ecotrack_users"
	// ReportsKey holds the report ledger, most recent first.
	ReportsKey = "ecotrack_reports"
)
