package core

import "testing"

// Round-trip property: unix -> ntp -> unix is the identity on the valid
// range, and likewise for unix -> zigbee -> unix.
func TestUnixNTPRoundTrip(t *testing.T) {
	maxForNTP := uint32(0xFFFFFFFF - ntpUnixOffsetSec)
	samples := []uint32{0, 1, 1000000000, 1700000000, maxForNTP}
	for _, u := range samples {
		n, s := UnixToNTP(u)
		if s != StatusOK {
			t.Fatalf("UnixToNTP(%d): %v", u, s)
		}
		back, s := NTPToUnix(n)
		if s != StatusOK {
			t.Fatalf("NTPToUnix(%d): %v", n, s)
		}
		if back != u {
			t.Fatalf("unix->ntp->unix mismatch: started %d, got back %d", u, back)
		}
	}
}

func TestUnixZigbeeRoundTrip(t *testing.T) {
	samples := []uint32{uint32(zigbeeUnixOffsetSec), uint32(zigbeeUnixOffsetSec) + 1, 1700000000}
	for _, u := range samples {
		z, s := UnixToZigbee(u)
		if s != StatusOK {
			t.Fatalf("UnixToZigbee(%d): %v", u, s)
		}
		back, s := ZigbeeToUnix(z)
		if s != StatusOK {
			t.Fatalf("ZigbeeToUnix(%d): %v", z, s)
		}
		if back != u {
			t.Fatalf("unix->zigbee->unix mismatch: started %d, got back %d", u, back)
		}
	}
}

func TestUnixToZigbeeRejectsBeforeEpoch(t *testing.T) {
	if _, s := UnixToZigbee(0); s != StatusInvalidParameter {
		t.Fatalf("expected InvalidParameter for a timestamp before the Zigbee epoch, got %v", s)
	}
}

func TestNTPToUnixRejectsBeforeUnixEpoch(t *testing.T) {
	if _, s := NTPToUnix(0); s != StatusInvalidParameter {
		t.Fatalf("expected InvalidParameter for an NTP timestamp before 1970, got %v", s)
	}
}

func TestIsValidTimeUnixBoundary(t *testing.T) {
	if !isValidTime(uint64(maxUnixTime), epochUnix, 0) {
		t.Fatal("expected maxUnixTime to be valid")
	}
	if isValidTime(uint64(maxUnixTime)+1, epochUnix, 0) {
		t.Fatal("expected maxUnixTime+1 to be invalid")
	}
}

func TestIsValidTimeNegativeTZUnderflow(t *testing.T) {
	if isValidTime(100, epochUnix, -200) {
		t.Fatal("expected a timestamp smaller than the negative tz magnitude to be invalid")
	}
}
