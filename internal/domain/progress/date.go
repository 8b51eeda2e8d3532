package progress

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date with no time-of-day component. Plaid sends
// transaction dates as "YYYY-MM-DD" strings; internal callers build them
// from time.Time values. Both forms normalize to midnight UTC so dates
// compare and hash consistently.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err == nil {
		return DateOf(t), nil
	}
	t, err = time.Parse(time.RFC3339, s)
	if err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("unable to parse date: %s", s)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, d.Time.Format("2006-01-02"))), nil
}

func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// Between reports whether d falls in [start, end], inclusive on both ends.
func (d Date) Between(start, end Date) bool {
	return !d.Time.Before(start.Time) && !d.Time.After(end.Time)
}
