// Package state persists the client's three state namespaces (active user,
// user roster, report ledger) as whole JSON values in a local SQLite table.
package state
