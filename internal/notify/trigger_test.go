package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/licensure/licensure/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntil(t *testing.T) {
	expiry := day(2026, time.December, 15)

	assert.Equal(t, 30, DaysUntil(expiry, day(2026, time.November, 15)))
	assert.Equal(t, 0, DaysUntil(expiry, day(2026, time.December, 15)))
	assert.Equal(t, -1, DaysUntil(expiry, day(2026, time.December, 16)))

	// The time of day never shifts the calendar difference.
	lateEvening := time.Date(2026, time.December, 14, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysUntil(expiry, lateEvening))
}

func TestDaysUntil_MixedZones(t *testing.T) {
	// Expiry dates come out of DATE columns as UTC midnights while the
	// clock runs in the host zone. The difference must stay a calendar
	// one in any pairing of zones.
	karachi := time.FixedZone("UTC+5", 5*60*60)
	expiry := day(2026, time.November, 14)

	morningAfter := time.Date(2026, time.November, 15, 9, 0, 0, 0, karachi)
	assert.Equal(t, -1, DaysUntil(expiry, morningAfter))

	sameDay := time.Date(2026, time.November, 14, 2, 0, 0, 0, karachi)
	assert.Equal(t, 0, DaysUntil(expiry, sameDay))

	thirtyOut := time.Date(2026, time.October, 15, 9, 0, 0, 0, karachi)
	assert.Equal(t, 30, DaysUntil(expiry, thirtyOut))

	denver := time.FixedZone("UTC-7", -7*60*60)
	lateNight := time.Date(2026, time.November, 13, 23, 0, 0, 0, denver)
	assert.Equal(t, 1, DaysUntil(expiry, lateNight))
}

func TestEvaluate_ExpiredNeverFiresAcrossZones(t *testing.T) {
	karachi := time.FixedZone("UTC+5", 5*60*60)
	lic := model.License{
		ExpiryDate:        day(2026, time.November, 14),
		NotifySixMonth:    true,
		NotifyMonthly:     true,
		NotifyDailyLast30: true,
	}

	decision := Evaluate(lic, time.Date(2026, time.November, 15, 9, 0, 0, 0, karachi))
	assert.False(t, decision.ShouldSend)
	assert.Equal(t, ReasonNone, decision.Reason)

	// Still inside the window on the expiry day itself.
	decision = Evaluate(lic, time.Date(2026, time.November, 14, 9, 0, 0, 0, karachi))
	assert.True(t, decision.ShouldSend)
}

func TestEvaluate_ExpiredNeverFires(t *testing.T) {
	lic := model.License{
		ExpiryDate:        day(2026, time.December, 15),
		NotifySixMonth:    true,
		NotifyMonthly:     true,
		NotifyDailyLast30: true,
	}

	decision := Evaluate(lic, day(2026, time.December, 16))
	assert.False(t, decision.ShouldSend)
	assert.Equal(t, ReasonNone, decision.Reason)
}

func TestEvaluate_SixMonthFiresAtPoint(t *testing.T) {
	lic := model.License{
		ExpiryDate:     day(2026, time.December, 15),
		NotifySixMonth: true,
	}

	// One day before the six-month point: nothing yet.
	decision := Evaluate(lic, day(2026, time.June, 14))
	assert.False(t, decision.ShouldSend)

	// At the point the one-shot fires and must be marked.
	decision = Evaluate(lic, day(2026, time.June, 15))
	assert.True(t, decision.ShouldSend)
	assert.Equal(t, ReasonSixMonth, decision.Reason)
	assert.True(t, decision.MarkSixMonthSent)
}

func TestEvaluate_SixMonthIsOneShot(t *testing.T) {
	sentAt := day(2026, time.June, 15)
	lic := model.License{
		ExpiryDate:     day(2026, time.December, 15),
		NotifySixMonth: true,
		SixMonthSentAt: &sentAt,
	}

	decision := Evaluate(lic, day(2026, time.June, 16))
	assert.False(t, decision.ShouldSend)
}

func TestEvaluate_MonthlyOnFirstOfMonth(t *testing.T) {
	sentAt := day(2026, time.June, 15)
	lic := model.License{
		ExpiryDate:     day(2026, time.December, 15),
		NotifyMonthly:  true,
		NotifySixMonth: true,
		SixMonthSentAt: &sentAt,
	}

	// First of a month inside the window.
	decision := Evaluate(lic, day(2026, time.September, 1))
	assert.True(t, decision.ShouldSend)
	assert.Equal(t, ReasonMonthly, decision.Reason)
	assert.False(t, decision.MarkSixMonthSent)

	// Not the first of the month.
	decision = Evaluate(lic, day(2026, time.September, 2))
	assert.False(t, decision.ShouldSend)

	// First of a month before the six-month point.
	decision = Evaluate(lic, day(2026, time.May, 1))
	assert.False(t, decision.ShouldSend)

	// First of the final month: only 14 days left, the monthly rule
	// yields to the daily one.
	decision = Evaluate(lic, day(2026, time.December, 1))
	assert.False(t, decision.ShouldSend)
}

func TestEvaluate_DailyLast30Boundary(t *testing.T) {
	lic := model.License{
		ExpiryDate:        day(2026, time.December, 15),
		NotifyDailyLast30: true,
	}

	decision := Evaluate(lic, day(2026, time.November, 14)) // 31 days left
	assert.False(t, decision.ShouldSend)

	decision = Evaluate(lic, day(2026, time.November, 15)) // 30 days left
	assert.True(t, decision.ShouldSend)
	assert.Equal(t, ReasonDailyLast30, decision.Reason)

	decision = Evaluate(lic, day(2026, time.December, 15)) // expiry day
	assert.True(t, decision.ShouldSend)
	assert.Equal(t, ReasonDailyLast30, decision.Reason)
}

func TestEvaluate_SixMonthWinsInsideLast30(t *testing.T) {
	lic := model.License{
		ExpiryDate:        day(2026, time.December, 15),
		NotifySixMonth:    true,
		NotifyMonthly:     true,
		NotifyDailyLast30: true,
	}

	decision := Evaluate(lic, day(2026, time.December, 1))
	assert.True(t, decision.ShouldSend)
	assert.Equal(t, ReasonSixMonth, decision.Reason)
	assert.True(t, decision.MarkSixMonthSent)
}

func TestEvaluate_NoFlagsNoSend(t *testing.T) {
	lic := model.License{ExpiryDate: day(2026, time.December, 15)}

	decision := Evaluate(lic, day(2026, time.December, 1))
	assert.False(t, decision.ShouldSend)
}

func TestShouldSendImmediateSixMonth(t *testing.T) {
	lic := model.License{
		ExpiryDate:     day(2026, time.December, 15),
		NotifySixMonth: true,
	}

	assert.False(t, ShouldSendImmediateSixMonth(lic, day(2026, time.June, 14)))
	assert.True(t, ShouldSendImmediateSixMonth(lic, day(2026, time.June, 15)))
	assert.True(t, ShouldSendImmediateSixMonth(lic, day(2026, time.December, 15)))

	// Already expired.
	assert.False(t, ShouldSendImmediateSixMonth(lic, day(2026, time.December, 16)))

	// Already sent.
	sentAt := day(2026, time.June, 15)
	lic.SixMonthSentAt = &sentAt
	assert.False(t, ShouldSendImmediateSixMonth(lic, day(2026, time.July, 1)))

	// Flag disabled.
	lic.SixMonthSentAt = nil
	lic.NotifySixMonth = false
	assert.False(t, ShouldSendImmediateSixMonth(lic, day(2026, time.July, 1)))
}
