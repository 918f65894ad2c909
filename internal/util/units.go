package util

// The study-time column switched from minutes to seconds without a
// migration. Anything below this threshold is assumed to be the old
// minutes format: no single day under the minutes scheme realistically
// accumulated 10000, while a day of seconds easily does. The value is
// frozen for compatibility with existing rows.
const legacySecondsThreshold = 10000

// NormalizeLegacySeconds resolves a stored study-time value of unknown
// unit into seconds.
func NormalizeLegacySeconds(raw int) int {
	if raw < legacySecondsThreshold {
		return raw * 60
	}
	return raw
}

// StoredStudySeconds returns the value of a stored study-time row in
// seconds. Rows stamped with an explicit unit bypass the heuristic.
func StoredStudySeconds(value int, unit string) int {
	if unit == "seconds" {
		return value
	}
	return NormalizeLegacySeconds(value)
}
