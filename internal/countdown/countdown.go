// Package countdown renders the dashboard's "next update in mm:ss" label.
//
// The countdown is cosmetic: it follows the refresh schedule but triggers
// nothing itself.
package countdown

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSpec is the refresh cadence used when none is configured.
const DefaultSpec = "@every 15m"

// Countdown tracks the time left until the next tick of a cron schedule.
type Countdown struct {
	schedule cron.Schedule
	anchor   time.Time
}

// New parses spec (standard cron syntax or a descriptor such as
// "@every 15m") and anchors interval schedules at anchor.
func New(spec string, anchor time.Time) (*Countdown, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return FromSchedule(schedule, anchor), nil
}

// FromSchedule builds a Countdown over an already parsed schedule.
func FromSchedule(schedule cron.Schedule, anchor time.Time) *Countdown {
	return &Countdown{schedule: schedule, anchor: anchor.Truncate(time.Second)}
}

// Next returns the next boundary strictly after now.
func (c *Countdown) Next(now time.Time) time.Time {
	every, ok := c.schedule.(cron.ConstantDelaySchedule)
	if !ok {
		return c.schedule.Next(now)
	}

	// Interval schedules tick relative to the anchor, not the wall clock.
	if now.Before(c.anchor) {
		return c.anchor
	}
	elapsed := now.Sub(c.anchor)
	ticks := elapsed/every.Delay + 1
	return c.anchor.Add(ticks * every.Delay)
}

// Remaining returns the time left until the next boundary. It is always
// positive and resets to the full period at each boundary.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	return c.Next(now).Sub(now)
}

// Label formats Remaining as mm:ss, rounding partial seconds up.
func (c *Countdown) Label(now time.Time) string {
	return Format(c.Remaining(now))
}

// Format renders d as mm:ss. Minutes are not capped at 59.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
