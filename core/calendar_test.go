package core

import "testing"

// 2020 is a leap year, so Feb 29 is a valid date; 2021 is not.
func TestLeapYearDateBoundary(t *testing.T) {
	if _, s := BuildDatetime(2020, February, 29, 0, 0, 0, 0); s != StatusOK {
		t.Fatalf("expected 2020-02-29 to be valid, got %v", s)
	}
	if _, s := BuildDatetime(2021, February, 29, 0, 0, 0, 0); s != StatusInvalidParameter {
		t.Fatalf("expected 2021-02-29 to be invalid, got %v", s)
	}
}

func TestLeapYearCenturyRule(t *testing.T) {
	if !isLeapYear(2000) {
		t.Fatal("2000 should be a leap year (divisible by 400)")
	}
	if isLeapYear(1900) {
		t.Fatal("1900 should not be a leap year (divisible by 100, not 400)")
	}
	if !isLeapYear(2024) {
		t.Fatal("2024 should be a leap year")
	}
}

// The UNIX epoch instant is 1970-01-01 00:00:00, a Thursday.
func TestUnixEpochConversion(t *testing.T) {
	d := ConvertTimeToDate(0, 0)
	if d.Year != 70 || d.Month != January || d.Day != 1 {
		t.Fatalf("expected 1970-01-01, got year=%d month=%d day=%d", d.Year, d.Month, d.Day)
	}
	if d.Hour != 0 || d.Min != 0 || d.Sec != 0 {
		t.Fatalf("expected 00:00:00, got %02d:%02d:%02d", d.Hour, d.Min, d.Sec)
	}
	if d.Weekday != 4 {
		t.Fatalf("expected Thursday (4), got %d", d.Weekday)
	}
}

// Round-trip property: ConvertDateToTime(ConvertTimeToDate(t, 0)) == t for
// sampled valid UNIX timestamps.
func TestTimeDateRoundTrip(t *testing.T) {
	samples := []uint32{
		0, 1, 86399, 86400, 31535999, 31536000,
		1000000000, 1600000000, 1700000000, 2000000000,
	}
	for _, want := range samples {
		d := ConvertTimeToDate(want, 0)
		got, status := ConvertDateToTime(d)
		if status != StatusOK {
			t.Fatalf("ConvertDateToTime(%d) failed: %v", want, status)
		}
		if got != want {
			t.Fatalf("round trip mismatch for t=%d: got %d (date=%+v)", want, got, d)
		}
	}
}

func TestBuildDatetimeFullYear(t *testing.T) {
	d, s := BuildDatetime(2024, March, 15, 12, 30, 45, 0)
	if s != StatusOK {
		t.Fatalf("BuildDatetime: %v", s)
	}
	if d.Year != 124 {
		t.Fatalf("expected stored year offset 124, got %d", d.Year)
	}
	if d.YearDay == 0 {
		t.Fatal("expected YearDay to be computed")
	}
}

func TestConvertDateToStr(t *testing.T) {
	d, s := BuildDatetime(2024, January, 2, 3, 4, 5, 0)
	if s != StatusOK {
		t.Fatalf("BuildDatetime: %v", s)
	}
	str, s := ConvertDateToStr("2006-01-02 15:04:05", d)
	if s != StatusOK {
		t.Fatalf("ConvertDateToStr: %v", s)
	}
	if str != "2024-01-02 03:04:05" {
		t.Fatalf("expected 2024-01-02 03:04:05, got %s", str)
	}
}
