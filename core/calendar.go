package core

import "time"

// Month names, 0-indexed, matching CalendarDate.Month's domain.
const (
	January uint8 = iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

const (
	yearUnixEpoch         = 1970
	yearNTPEpoch          = 1900
	ntpUnixEpochDiffYears = yearUnixEpoch - yearNTPEpoch // 70
	daysPerYear           = 365
	secPerDay             = 86400
	secPerYear            = secPerDay * daysPerYear
	maxUnixYearOffset     = 2038 - yearNTPEpoch // 138: last representable year, stored as offset from 1900
)

var daysInMonthTable = [2][12]uint8{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}, // non-leap
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}, // leap
}

// CalendarDate is a proleptic-Gregorian calendar date/time with the
// year stored as an offset from 1900, matching the classic C struct-tm
// convention.
type CalendarDate struct {
	Year     uint16 // years since 1900
	Month    uint8  // 0-11
	Day      uint8  // 1-31
	Hour     uint8  // 0-23
	Min      uint8  // 0-59
	Sec      uint8  // 0-59
	Weekday  uint8  // 0-6, 0 = Sunday
	YearDay  uint16 // 1-366
	TZOffset int32  // signed seconds
}

func leapIdx(leap bool) int {
	if leap {
		return 1
	}
	return 0
}

// isLeapYear applies the Gregorian rule to the actual calendar year
// (1900 + offset), not the stored offset, so the century exception
// (2000 is leap, a 1900-relative offset would get it wrong) is correct.
func isLeapYear(fullYear uint32) bool {
	return fullYear%4 == 0 && (fullYear%100 != 0 || fullYear%400 == 0)
}

// leapDaysUpToYear approximates the number of leap days elapsed in the
// `years` years since 1970, the way the original sleeptimer's
// TIME_LEAP_DAYS_UP_TO_YEAR(year) macro does. Only meaningful for
// years > 2, exactly as every call site below guards it.
func leapDaysUpToYear(years uint32) uint32 {
	return (years-3)/4 + 1
}

func computeDayOfYear(month, day uint8, leap bool) uint16 {
	var total uint16
	for i := uint8(0); i < month; i++ {
		total += uint16(daysInMonthTable[leapIdx(leap)][i])
	}
	return total + uint16(day)
}

// daysSinceEpoch returns the number of days between 1970-01-01 and d's
// date fields (ignoring time-of-day and time zone), using the same
// two-pass leap-day approximation ConvertDateToTime/ConvertTimeToDate use.
func daysSinceEpoch(d CalendarDate) uint32 {
	fullYear := uint32(d.Year) - ntpUnixEpochDiffYears
	var monthDays uint32
	if fullYear > 2 {
		monthDays = leapDaysUpToYear(fullYear)
	}
	leap := isLeapYear(yearUnixEpoch + fullYear)
	for i := 0; i < int(d.Month); i++ {
		monthDays += uint32(daysInMonthTable[leapIdx(leap)][i])
	}
	monthDays += uint32(d.Day - 1)
	return fullYear*daysPerYear + monthDays
}

// isValidDate range-checks each field against its domain, using the
// leap-year table for day-of-month, and clamps the top of the range to
// 2038-01-19 03:14:07 UTC, the last date a 32-bit UNIX timestamp can hold.
func isValidDate(d CalendarDate) bool {
	if d.Year > maxUnixYearOffset {
		return false
	}
	if d.Month > December {
		return false
	}
	leap := isLeapYear(yearNTPEpoch + uint32(d.Year))
	if d.Day == 0 || d.Day > daysInMonthTable[leapIdx(leap)][d.Month] {
		return false
	}
	if d.Hour > 23 || d.Min > 59 || d.Sec > 59 {
		return false
	}
	if d.Year == maxUnixYearOffset {
		if d.Month > January {
			return false
		}
		if d.Day > 19 {
			return false
		}
		if d.Day == 19 {
			if d.Hour > 3 {
				return false
			}
			if d.Hour == 3 && d.Min > 14 {
				return false
			}
			if d.Hour == 3 && d.Min == 14 && d.Sec > 7 {
				return false
			}
		}
	}
	return true
}

// ConvertTimeToDate converts a UNIX timestamp to a CalendarDate. tz is
// only used to validate the timestamp and is stored in the result; the
// date fields themselves are derived from the raw UNIX seconds, matching
// the original sleeptimer service's behavior.
func ConvertTimeToDate(t uint32, tz int32) CalendarDate {
	if !isValidTime(uint64(t), epochUnix, tz) {
		return CalendarDate{}
	}

	sec := t % 60
	t /= 60
	min := t % 60
	t /= 60
	hour := t % 24
	t /= 24 // t is now days since 1970-01-01

	weekday := uint8((t + 4) % 7)

	fullYear := t / daysPerYear
	var leapDay uint32
	if fullYear > 2 {
		leapDay = leapDaysUpToYear(fullYear)
		fullYear = (t - leapDay) / daysPerYear
		if fullYear > 2 {
			leapDay = leapDaysUpToYear(fullYear)
		} else {
			leapDay = 0
		}
	}
	yearOffset := uint16(ntpUnixEpochDiffYears + fullYear)
	leap := isLeapYear(yearUnixEpoch + fullYear)

	days := (t - leapDay) - daysPerYear*fullYear
	yearDay := days + 1

	month := uint8(0)
	for days >= uint32(daysInMonthTable[leapIdx(leap)][month]) {
		days -= uint32(daysInMonthTable[leapIdx(leap)][month])
		month++
	}

	return CalendarDate{
		Year:     yearOffset,
		Month:    month,
		Day:      uint8(days + 1),
		Hour:     uint8(hour),
		Min:      uint8(min),
		Sec:      uint8(sec),
		Weekday:  weekday,
		YearDay:  uint16(yearDay),
		TZOffset: tz,
	}
}

// ConvertDateToTime converts a CalendarDate back to UNIX seconds.
func ConvertDateToTime(d CalendarDate) (uint32, Status) {
	if !isValidDate(d) {
		return 0, StatusInvalidParameter
	}
	days := daysSinceEpoch(d)
	t := days*secPerDay + uint32(d.Hour)*3600 + uint32(d.Min)*60 + uint32(d.Sec)
	return uint32(int64(t) + int64(d.TZOffset)), StatusOK
}

// BuildDatetime constructs a CalendarDate from raw field values. If year
// is below 1900 it is assumed to already be an NTP-epoch-relative
// (years-since-1900) value rather than a full calendar year.
func BuildDatetime(year int, month, day, hour, min, sec uint8, tz int32) (CalendarDate, Status) {
	var storedYear uint16
	if year < yearNTPEpoch {
		storedYear = uint16(year)
	} else {
		storedYear = uint16(year - yearNTPEpoch)
	}

	d := CalendarDate{
		Year:     storedYear,
		Month:    month,
		Day:      day,
		Hour:     hour,
		Min:      min,
		Sec:      sec,
		TZOffset: tz,
	}
	if !isValidDate(d) {
		return CalendarDate{}, StatusInvalidParameter
	}

	leap := isLeapYear(yearNTPEpoch + uint32(d.Year))
	d.YearDay = computeDayOfYear(d.Month, d.Day, leap)
	days := daysSinceEpoch(d)
	d.Weekday = uint8((days + 4) % 7)

	return d, StatusOK
}

// ConvertDateToStr formats d using a Go time layout string (not a C
// strftime format, since this package's stack has no strftime
// equivalent and the standard library's layout-based formatting is the
// idiomatic Go way to render a calendar date).
func ConvertDateToStr(layout string, d CalendarDate) (string, Status) {
	if !isValidDate(d) {
		return "", StatusInvalidParameter
	}
	t := time.Date(yearNTPEpoch+int(d.Year), time.Month(d.Month+1), int(d.Day),
		int(d.Hour), int(d.Min), int(d.Sec), 0, time.UTC)
	return t.Format(layout), StatusOK
}
