// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/insureai/models"
)

// Thresholds for the cost driver labels
const (
	youngAge       = 30
	middleAge      = 50
	underweightBMI = 18.5
	healthyBMI     = 25.0
	overweightBMI  = 30.0
)

// Money formats a dollar amount with thousands separators and two decimals.
func Money(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Breakdown splits an annual cost into monthly and weekly amounts.
func Breakdown(annual float64) models.CostBreakdown {
	b := models.CostBreakdown{
		Annual:  annual,
		Monthly: annual / 12,
		Weekly:  annual / 52,
	}
	b.AnnualDisplay = Money(b.Annual)
	b.MonthlyDisplay = Money(b.Monthly)
	b.WeeklyDisplay = Money(b.Weekly)
	return b
}

// CostDrivers labels how each profile attribute pushes the estimate.
func CostDrivers(p models.Profile) []models.CostDriver {
	drivers := make([]models.CostDriver, 0, 4)

	switch {
	case p.Age < youngAge:
		drivers = append(drivers, models.CostDriver{Factor: "age", Status: "Low Impact", Impact: models.ImpactLow})
	case p.Age < middleAge:
		drivers = append(drivers, models.CostDriver{Factor: "age", Status: "Moderate Impact", Impact: models.ImpactModerate})
	default:
		drivers = append(drivers, models.CostDriver{Factor: "age", Status: "High Impact", Impact: models.ImpactHigh})
	}

	switch {
	case p.BMI < underweightBMI:
		drivers = append(drivers, models.CostDriver{Factor: "bmi", Status: "Underweight", Impact: models.ImpactLow})
	case p.BMI < healthyBMI:
		drivers = append(drivers, models.CostDriver{Factor: "bmi", Status: "Healthy", Impact: models.ImpactLow})
	case p.BMI < overweightBMI:
		drivers = append(drivers, models.CostDriver{Factor: "bmi", Status: "Overweight", Impact: models.ImpactModerate})
	default:
		drivers = append(drivers, models.CostDriver{Factor: "bmi", Status: "Obese", Impact: models.ImpactHigh})
	}

	if p.Smoker {
		drivers = append(drivers, models.CostDriver{Factor: "smoking", Status: "Major Impact", Impact: models.ImpactHigh})
	} else {
		drivers = append(drivers, models.CostDriver{Factor: "smoking", Status: "Positive", Impact: models.ImpactLow})
	}

	if p.Region == models.RegionNortheast {
		drivers = append(drivers, models.CostDriver{Factor: "region", Status: "Higher Rates", Impact: models.ImpactModerate})
	} else {
		drivers = append(drivers, models.CostDriver{Factor: "region", Status: "Standard Rates", Impact: models.ImpactLow})
	}

	return drivers
}

// Summarize aggregates a newest-first history. Empty history yields the zero value.
func Summarize(records []models.PredictionRecord) models.HistorySummary {
	if len(records) == 0 {
		return models.HistorySummary{}
	}

	s := models.HistorySummary{
		Count:   len(records),
		Latest:  records[0].PredictedCost,
		Highest: records[0].PredictedCost,
		Lowest:  records[0].PredictedCost,
	}
	var total float64
	for _, r := range records {
		total += r.PredictedCost
		s.Highest = max(s.Highest, r.PredictedCost)
		s.Lowest = min(s.Lowest, r.PredictedCost)
	}
	s.Average = total / float64(len(records))
	return s
}

// HistoryEntries decorates records with display strings relative to now.
func HistoryEntries(records []models.PredictionRecord, now time.Time) []models.HistoryEntry {
	entries := make([]models.HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, models.HistoryEntry{
			PredictionRecord: r,
			CostDisplay:      Money(r.PredictedCost),
			CreatedAgo:       humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		})
	}
	return entries
}

// Describe renders a scenario delta for display, e.g. "$3,000.00 (30.0%)".
func Describe(delta, percent float64, percentDefined bool) string {
	if !percentDefined {
		return Money(delta)
	}
	return fmt.Sprintf("%s (%.1f%%)", Money(delta), percent)
}
