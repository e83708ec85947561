package core

// Epoch formats recognized by isValidTime.
const (
	epochUnix = iota
	epochNTP
	epochZigbee
)

const (
	maxUnixTime uint32 = 0x7FFFFFFF

	// ntpUnixOffsetSec is 70 years plus 17 leap days, the gap between the
	// NTP epoch (1900-01-01) and the UNIX epoch (1970-01-01).
	ntpUnixOffsetSec uint64 = (ntpUnixEpochDiffYears*365 + 17) * secPerDay

	// zigbeeUnixOffsetSec is 30 years plus 7 leap days, the gap between
	// the UNIX epoch and the Zigbee cluster epoch (2000-01-01).
	zigbeeUnixOffsetSec uint64 = (30*365 + 7) * secPerDay
)

// isValidTime checks that t, interpreted as the given epoch format with
// the given time-zone offset, will not overflow or underflow on
// conversion. Uses strict conjunction throughout rather than the
// bitwise-AND-assign the original sleeptimer source uses, which can let
// an invalid time through depending on the overflow check's result.
func isValidTime(t uint64, format int, tz int32) bool {
	if tz < 0 {
		if t <= uint64(-tz) {
			return false
		}
	} else {
		if t > uint64(0xFFFFFFFF)-uint64(tz) {
			return false
		}
	}

	switch format {
	case epochUnix:
		return t <= uint64(maxUnixTime)
	case epochNTP:
		return t >= ntpUnixOffsetSec
	case epochZigbee:
		return t <= uint64(maxUnixTime)-zigbeeUnixOffsetSec
	default:
		return false
	}
}

// UnixToNTP converts a UNIX timestamp to its NTP-epoch equivalent.
func UnixToNTP(u uint32) (uint32, Status) {
	result := uint64(u) + ntpUnixOffsetSec
	if result > 0xFFFFFFFF {
		return 0, StatusInvalidParameter
	}
	return uint32(result), StatusOK
}

// NTPToUnix converts an NTP timestamp to its UNIX-epoch equivalent.
func NTPToUnix(n uint32) (uint32, Status) {
	if uint64(n) < ntpUnixOffsetSec {
		return 0, StatusInvalidParameter
	}
	return uint32(uint64(n) - ntpUnixOffsetSec), StatusOK
}

// UnixToZigbee converts a UNIX timestamp to its Zigbee-cluster-epoch
// equivalent.
func UnixToZigbee(u uint32) (uint32, Status) {
	if uint64(u) < zigbeeUnixOffsetSec {
		return 0, StatusInvalidParameter
	}
	return uint32(uint64(u) - zigbeeUnixOffsetSec), StatusOK
}

// ZigbeeToUnix converts a Zigbee-cluster timestamp to its UNIX-epoch
// equivalent.
func ZigbeeToUnix(z uint32) (uint32, Status) {
	result := uint64(z) + zigbeeUnixOffsetSec
	if result > uint64(maxUnixTime) {
		return 0, StatusInvalidParameter
	}
	return uint32(result), StatusOK
}
