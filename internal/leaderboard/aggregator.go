package leaderboard

import (
	"sort"
	"time"

	"civicfix/internal/models"
)

// Periods accepted by Compute.
const (
	PeriodAll   = "all"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// KnownPeriod reports whether p is a recognised leaderboard period.
func KnownPeriod(p string) bool {
	switch p {
	case PeriodAll, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// Entry is one ranked contributor row.
type Entry struct {
	UserID       uint    `json:"userId"`
	DisplayName  string  `json:"displayName"`
	TotalReports int     `json:"totalReports"`
	City         *string `json:"city"`
	Avatar       *string `json:"avatar"`
}

// ReportSource is the slice of the report repository the aggregator needs.
type ReportSource interface {
	ListAttributedReportsSince(since time.Time) ([]models.Report, error)
}

// Aggregator derives ranked contributor summaries from the report set.
type Aggregator struct {
	reports ReportSource
}

func New(reports ReportSource) *Aggregator {
	return &Aggregator{reports: reports}
}

// Compute ranks contributors by attributed report count within the period
// window ending now. topN <= 0 means no truncation. An empty report set yields
// an empty slice, not an error.
func (a *Aggregator) Compute(period string, topN int) ([]Entry, error) {
	reports, err := a.reports.ListAttributedReportsSince(windowStart(period, time.Now()))
	if err != nil {
		return nil, err
	}
	return rank(reports, topN), nil
}

// windowStart returns the inclusive lower bound of the period ending at now,
// or the zero time for PeriodAll.
func windowStart(period string, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return now.Add(-7 * 24 * time.Hour)
	case PeriodMonth:
		return now.Add(-30 * 24 * time.Hour)
	default:
		return time.Time{}
	}
}

// rank groups reports by contributor, orders by count descending with
// ascending user id breaking ties, and truncates to topN when topN > 0.
func rank(reports []models.Report, topN int) []Entry {
	byUser := make(map[uint]*Entry)
	for _, report := range reports {
		if report.UserID == nil {
			continue
		}
		entry, ok := byUser[*report.UserID]
		if !ok {
			entry = &Entry{UserID: *report.UserID}
			if report.User != nil {
				entry.DisplayName = report.User.DisplayName
				entry.City = report.User.City
				entry.Avatar = report.User.Avatar
			}
			byUser[*report.UserID] = entry
		}
		entry.TotalReports++
	}

	entries := make([]Entry, 0, len(byUser))
	for _, entry := range byUser {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalReports != entries[j].TotalReports {
			return entries[i].TotalReports > entries[j].TotalReports
		}
		return entries[i].UserID < entries[j].UserID
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
