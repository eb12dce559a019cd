package clock

import "time"

// Moment represents a snapshot of local date and time information.
// All fields are derived from the same instant.
type Moment struct {
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Weekday   Weekday   `json:"weekday"`
	Timestamp time.Time `json:"timestamp"`
}

// MomentAt derives a moment from the provided instant.
func (p *Provider) MomentAt(t time.Time) Moment {
	local := t.In(p.loc)

	return Moment{
		Date:      p.DateOf(local).String(),
		Time:      p.TimeOf(local).String(),
		Weekday:   p.WeekdayOf(local),
		Timestamp: local,
	}
}

// CurrentMoment samples the clock once and returns the resulting moment.
func (p *Provider) CurrentMoment() Moment {
	return p.MomentAt(p.now())
}
