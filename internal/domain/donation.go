package domain

import (
	"fmt"
	"time"
)

// Month identifies a calendar month
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Next returns the following month
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the preceding month
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Before reports whether m is strictly earlier than other
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MonthDonation is the amount a character donated during one month, in copper
type MonthDonation struct {
	CharacterID string     `json:"character_id" db:"character_id" validate:"required"`
	Year        int        `json:"year" db:"year" validate:"required,min=2000,max=9999"`
	Month       time.Month `json:"month" db:"month" validate:"required,min=1,max=12"`
	Amount      int64      `json:"amount" db:"amount"`
}

// Period returns the month the donation was made in
func (d MonthDonation) Period() Month {
	return Month{Year: d.Year, Month: d.Month}
}
