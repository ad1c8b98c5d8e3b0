package utils

import (
	"fmt"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
)

// ParseEventSchedule parses an event date ("2006-01-02") and its start/end
// times ("15:04"), anchoring both times to the event date.
func ParseEventSchedule(date, start, end string) (eventDate, startTime, endTime time.Time, err error) {
	eventDate, err = time.Parse(dateLayout, date)
	if err != nil {
		return
	}
	startTime, err = time.Parse(dateTimeLayout, fmt.Sprintf("%sT%s", date, start))
	if err != nil {
		return
	}
	endTime, err = time.Parse(dateTimeLayout, fmt.Sprintf("%sT%s", date, end))
	return
}
