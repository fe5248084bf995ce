// Package filter turns listing and dashboard parameters into gorm scopes over
// the events table.
package filter

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Eursukkul/eventhub/internal/models"
	"gorm.io/gorm"
)

// StatType is the dashboard's time window. The windows are mutually exclusive.
type StatType string

const (
	StatAll      StatType = "all"
	StatUpcoming StatType = "upcoming"
	StatPast     StatType = "past"
)

// ParseStatType maps the stat_type query value to a window. Unknown or empty
// values select every event.
func ParseStatType(raw string) StatType {
	switch StatType(raw) {
	case StatUpcoming:
		return StatUpcoming
	case StatPast:
		return StatPast
	default:
		return StatAll
	}
}

// Events describes a filtered view over events. The zero value matches every
// event. Set fields are ANDed together.
type Events struct {
	// Stat and Today select upcoming (date >= Today) or past (date < Today).
	Stat  StatType
	Today time.Time

	// On restricts to a single calendar day.
	On *time.Time

	CategoryID *uint

	// Start and End bound the date inclusively; the range only applies when
	// both are set.
	Start *time.Time
	End   *time.Time

	// Search matches name or location, case-insensitively.
	Search string
}

// Stat returns the window filter for the given stat type relative to today.
func Stat(stat StatType, today time.Time) Events {
	return Events{Stat: stat, Today: today}
}

// OnDay returns a filter for events dated exactly on day.
func OnDay(day time.Time) Events {
	return Events{On: &day}
}

// ForCategory returns a filter for events of one category.
func ForCategory(id uint) Events {
	return Events{CategoryID: &id}
}

// FromQuery reads the event list parameters category, start_date, end_date
// and search. Malformed ids and dates are treated as absent.
func FromQuery(q url.Values) Events {
	var f Events

	if raw := q.Get("category"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			cid := uint(id)
			f.CategoryID = &cid
		}
	}

	f.Start = parseDay(q.Get("start_date"))
	f.End = parseDay(q.Get("end_date"))
	f.Search = q.Get("search")

	return f
}

// HasRange reports whether the date range applies.
func (f Events) HasRange() bool {
	return f.Start != nil && f.End != nil
}

// Apply adds the filter's predicates to db. It is meant for db.Scopes.
func (f Events) Apply(db *gorm.DB) *gorm.DB {
	switch f.Stat {
	case StatUpcoming:
		db = db.Where(`"date" >= ?`, day(f.Today))
	case StatPast:
		db = db.Where(`"date" < ?`, day(f.Today))
	}

	if f.On != nil {
		db = db.Where(`"date" = ?`, day(*f.On))
	}

	if f.CategoryID != nil {
		db = db.Where("category_id = ?", *f.CategoryID)
	}

	if f.HasRange() {
		db = db.Where(`"date" BETWEEN ? AND ?`, day(*f.Start), day(*f.End))
	}

	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		db = db.Where("name ILIKE ? OR location ILIKE ?", pattern, pattern)
	}

	return db
}

// Ordered sorts events chronologically.
func Ordered(db *gorm.DB) *gorm.DB {
	return db.Order(`"date" ASC`).Order(`"time" ASC`).Order("id ASC")
}

// Today truncates now to its calendar date, keeping the date as seen in now's
// location.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func day(t time.Time) string {
	return t.Format(models.DateLayout)
}

func parseDay(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
