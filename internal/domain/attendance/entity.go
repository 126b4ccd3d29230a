package attendance

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// CheckInLayout formats CheckIn and CheckOut. The date and the time are
// separated by ", " so reports can split them apart.
const CheckInLayout = "2006-01-02, 15:04:05"

// DateTimeSeparator splits a check-in timestamp into date and time.
const DateTimeSeparator = ", "

// AttendanceRecord is one camera/GPS check-in. FaceCapture holds the image
// payload inline (typically a data URL).
type AttendanceRecord struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	UserName     string  `json:"userName"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     *string `json:"checkOut,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	FaceCapture  string  `json:"faceCapture"`
	Status       Status  `json:"status"`
	AdminComment *string `json:"adminComment,omitempty"`
}

// SplitCheckIn returns the date and time parts of CheckIn. Time is empty
// when CheckIn has no separator.
func (a *AttendanceRecord) SplitCheckIn() (date, clock string) {
	date, clock, _ = strings.Cut(a.CheckIn, DateTimeSeparator)
	return date, strings.TrimSpace(clock)
}

var checkInDateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"2/1/2006",
}

// CheckInTime parses the check-in date. Accepts full RFC3339 values and
// date parts in ISO or US locale order.
func (a *AttendanceRecord) CheckInTime() (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, a.CheckIn); err == nil {
		return t, true
	}
	date, _ := a.SplitCheckIn()
	date = strings.TrimSpace(date)
	for _, layout := range checkInDateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// InMonth reports whether the check-in date falls in monthKey ("YYYY-MM").
func (a *AttendanceRecord) InMonth(monthKey string) bool {
	t, ok := a.CheckInTime()
	if !ok {
		return false
	}
	return t.Format("2006-01") == monthKey
}
