// Package notify implements the expiry-notification engine: the trigger
// rules deciding when a license is due a reminder, template rendering,
// and the dispatcher that delivers reminders to linked people.
package notify

import (
	"time"

	"github.com/licensure/licensure/internal/model"
)

// Reason identifies which rule fired for a license on a given day.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonSixMonth    Reason = "SIX_MONTH"
	ReasonMonthly     Reason = "MONTHLY"
	ReasonDailyLast30 Reason = "DAILY_LAST_30"
)

// Decision is the outcome of evaluating a license's trigger rules.
type Decision struct {
	ShouldSend       bool
	Reason           Reason
	MarkSixMonthSent bool
}

// startOfDay maps t to its calendar day as a UTC midnight. Expiry dates
// scan out of DATE columns as UTC midnights while the clock runs in the
// host zone; projecting both onto UTC keeps the arithmetic in one clock
// domain.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the calendar-day difference between now and the
// expiry date. Both operands are reduced to their own calendar day
// first, so the time of day and the zone of either never shift the
// result.
func DaysUntil(expiry, now time.Time) int {
	return int(startOfDay(expiry).Sub(startOfDay(now)) / (24 * time.Hour))
}

// sixMonthPoint is the first day on which the one-time six-month
// reminder may fire.
func sixMonthPoint(expiry time.Time) time.Time {
	return startOfDay(startOfDay(expiry).AddDate(0, -6, 0))
}

// Evaluate maps a license's notification flags, dates and the reference
// day to at most one reminder. Rule priority: the six-month one-shot
// wins over the monthly rule, which wins over the last-30-days rule.
// The monthly rule is bounded to the window between the six-month point
// and the final 30 days so it never overlaps the daily rule.
func Evaluate(lic model.License, today time.Time) Decision {
	expiryDay := startOfDay(lic.ExpiryDate)
	day := startOfDay(today)
	point := sixMonthPoint(expiryDay)
	daysLeft := DaysUntil(expiryDay, day)

	if daysLeft < 0 {
		return Decision{}
	}

	if lic.NotifySixMonth && lic.SixMonthSentAt == nil && !day.Before(point) {
		return Decision{ShouldSend: true, Reason: ReasonSixMonth, MarkSixMonthSent: true}
	}

	if lic.NotifyMonthly && !day.Before(point) && daysLeft > 30 && day.Day() == 1 {
		return Decision{ShouldSend: true, Reason: ReasonMonthly}
	}

	if lic.NotifyDailyLast30 && daysLeft <= 30 {
		return Decision{ShouldSend: true, Reason: ReasonDailyLast30}
	}

	return Decision{}
}

// ShouldSendImmediateSixMonth reports whether the six-month reminder is
// due right now. It backs the create/update fast path and shares the
// exact arithmetic of the daily evaluation.
func ShouldSendImmediateSixMonth(lic model.License, now time.Time) bool {
	expiryDay := startOfDay(lic.ExpiryDate)
	day := startOfDay(now)

	return lic.NotifySixMonth &&
		lic.SixMonthSentAt == nil &&
		DaysUntil(expiryDay, day) >= 0 &&
		!day.Before(sixMonthPoint(expiryDay))
}
