package service

import "time"

// timestampPrecision matches what PostgreSQL keeps for timestamptz, so
// values read back from any store compare equal to the ones written
const timestampPrecision = time.Microsecond

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(timestampPrecision)
}

// nextModification returns a modification time strictly after prev
func nextModification(now time.Time, prev *time.Time) time.Time {
	if prev != nil && !now.After(*prev) {
		return prev.Add(timestampPrecision)
	}
	return now
}
