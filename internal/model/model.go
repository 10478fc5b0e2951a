package model

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day on the wire ("2006-01-02"), UTC midnight in memory.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Date())
}

func (d Date) AddDays(days int) Date {
	return Date{d.AddDate(0, 0, days)}
}

// DaysUntil returns the number of calendar days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time) / (24 * time.Hour))
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// WeekKey identifies the ISO week d falls into, unique across years.
func (d Date) WeekKey() int {
	year, week := d.ISOWeek()
	return year*100 + week
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return fmt.Errorf("date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

type Client struct {
	IDNumber int    `json:"id_number" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email_address" validate:"required,email"`
	Phone    string `json:"phone_number" validate:"required"`
}

type BookingRequest struct {
	ClientID  int  `json:"client_id" validate:"required"`
	StartDate Date `json:"start_date" validate:"required"`
	EndDate   Date `json:"end_date" validate:"required"`
}

type RoomPaymentRequest struct {
	ClientID  int     `json:"client_id" validate:"required"`
	StartDate Date    `json:"start_date" validate:"required"`
	EndDate   Date    `json:"end_date" validate:"required"`
	Price     float64 `json:"price"`
}

type BookedRoom struct {
	BookingID int     `json:"booking_id"`
	ClientID  int     `json:"client_id"`
	StartDate Date    `json:"start_date"`
	EndDate   Date    `json:"end_date"`
	BookedOn  Date    `json:"booked_on"`
	Price     float64 `json:"price"`
}

// Nights is the length of the stay in calendar days.
func (b BookedRoom) Nights() int {
	return b.StartDate.DaysUntil(b.EndDate)
}

// Overlaps reports whether two stays share at least one calendar day,
// inclusive on both ends.
func (b BookedRoom) Overlaps(start, end Date) bool {
	return !start.After(b.EndDate.Time) && !b.StartDate.After(end.Time)
}

type RoomPrice struct {
	Price float64 `json:"room_price"`
}

type ClientPhoto struct {
	ClientID int    `json:"client_id" validate:"required"`
	PhotoURL string `json:"photo_url" validate:"required,url"`
}

type SignedURL struct {
	URL string `json:"url"`
}
