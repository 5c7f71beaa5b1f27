package models

import (
	"errors"
	"time"
)

// Category classifies an environmental action.
type Category string

const (
	CategoryWaste  Category = "waste"
	CategoryTree   Category = "tree"
	CategoryWater  Category = "water"
	CategoryAir    Category = "air"
	CategoryEnergy Category = "energy"
	CategoryOther  Category = "other"
)

var ErrUnknownCategory = errors.New("unknown category")

// categoryLabels maps category ids to the display labels stored on reports.
var categoryLabels = map[Category]string{
	CategoryWaste:  "Waste Segregation",
	CategoryTree:   "Tree Plantation",
	CategoryWater:  "Water Pollution",
	CategoryAir:    "Air Pollution",
	CategoryEnergy: "Energy Conservation",
	CategoryOther:  "Other",
}

// cashbackAmounts is the fixed per-category reward table.
var cashbackAmounts = map[Category]int{
	CategoryWaste:  50,
	CategoryTree:   100,
	CategoryWater:  75,
	CategoryAir:    60,
	CategoryEnergy: 45,
	CategoryOther:  30,
}

// defaultCashback is used when a category has no table entry.
const defaultCashback = 50

// Categories lists all known categories in display order.
func Categories() []Category {
	return []Category{CategoryWaste, CategoryTree, CategoryWater, CategoryAir, CategoryEnergy, CategoryOther}
}

// ParseCategory converts a category id string to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryLabels[c]; !ok {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// Label returns the display label for the category. Unknown categories fall
// back to their raw id.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Cashback returns the reward amount for the category.
func (c Category) Cashback() int {
	if v, ok := cashbackAmounts[c]; ok {
		return v
	}
	return defaultCashback
}

// Severity grades how serious a reported issue is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Status tracks a report through its one-way lifecycle. The client only ever
// writes StatusVerified; the transition to StatusSolved belongs to an
// external backend process.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusSolved   Status = "solved"
)

// Report is one submitted environmental-action record. Category holds the
// display label, not the id, matching the persisted layout. Reports are
// created once, on a successful verification, and never mutated afterwards.
type Report struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Severity    Severity `json:"severity"`
	Status      Status   `json:"status"`
	Cashback    int      `json:"cashback"`
	Date        string   `json:"date"`
	AILabels    []string `json:"ai_labels,omitempty"`
}

// NewReport builds a verified report for the given category with the
// category's cashback amount and the current time as creation date.
func NewReport(cat Category, title, description, location string, severity Severity, aiLabels []string) Report {
	return Report{
		ID:          NewID(),
		Category:    cat.Label(),
		Title:       title,
		Description: description,
		Location:    location,
		Severity:    severity,
		Status:      StatusVerified,
		Cashback:    cat.Cashback(),
		Date:        time.Now().UTC().Format(time.RFC3339),
		AILabels:    aiLabels,
	}
}

// SolvedCount returns how many reports have been marked solved.
func SolvedCount(reports []Report) int {
	n := 0
	for _, r := range reports {
		if r.Status == StatusSolved {
			n++
		}
	}
	return n
}

// SolvedCashback sums the cashback of solved reports.
func SolvedCashback(reports []Report) int {
	total := 0
	for _, r := range reports {
		if r.Status == StatusSolved {
			total += r.Cashback
		}
	}
	return total
}
