// Package models defines the user and report records persisted by the
// EcoTrack client, together with their derived aggregates.
package models

import "time"

// User is a registered account. Counters are mutated only through the
// session service's update operation and never decrease in normal use.
//
// JSON field names match the persisted state layout, so documents written by
// earlier versions of the app load unchanged.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Institution   string `json:"institution"`
	Avatar        string `json:"avatar,omitempty"`
	TotalCashback int    `json:"totalCashback"`
	TotalReports  int    `json:"totalReports"`
	SolvedReports int    `json:"solvedReports"`
	Certificates  int    `json:"certificates"`
	JoinedDate    string `json:"joinedDate"`
}

// NewUser constructs a fresh account with zeroed counters, a generated id,
// and the current time as the join date.
func NewUser(name, email, institution string) User {
	return User{
		ID:          NewID(),
		Name:        name,
		Email:       email,
		Institution: institution,
		JoinedDate:  time.Now().UTC().Format(time.RFC3339),
	}
}

// UserUpdate is a partial update of a User. Nil fields are left untouched;
// set fields overwrite the current value.
type UserUpdate struct {
	Name          *string
	Email         *string
	Institution   *string
	Avatar        *string
	TotalCashback *int
	TotalReports  *int
	SolvedReports *int
	Certificates  *int
}

// Apply merges the update into u, field by field. ID and JoinedDate are
// immutable and cannot be changed this way.
func (u *User) Apply(upd UserUpdate) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Institution != nil {
		u.Institution = *upd.Institution
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.TotalCashback != nil {
		u.TotalCashback = *upd.TotalCashback
	}
	if upd.TotalReports != nil {
		u.TotalReports = *upd.TotalReports
	}
	if upd.SolvedReports != nil {
		u.SolvedReports = *upd.SolvedReports
	}
	if upd.Certificates != nil {
		u.Certificates = *upd.Certificates
	}
}
