// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package insights turns raw predictions into the figures shown to users:
// monthly and weekly breakdowns, per-attribute cost drivers, and history
// summaries. Amounts are formatted with go-humanize.
package insights
