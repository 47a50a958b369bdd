package member

import "math"

// Bucket names a message counter.
type Bucket string

const (
	BucketDaily   Bucket = "daily"
	BucketWeekly  Bucket = "weekly"
	BucketMonthly Bucket = "monthly"
	BucketAllTime Bucket = "all_time"
)

// Valid reports whether b is one of the known buckets.
func (b Bucket) Valid() bool {
	switch b {
	case BucketDaily, BucketWeekly, BucketMonthly, BucketAllTime:
		return true
	}
	return false
}

// Resettable reports whether the bucket is zeroed periodically.
func (b Bucket) Resettable() bool {
	return b.Valid() && b != BucketAllTime
}

// XP rewarded per counted message.
const MessageXP = 5

// Stats is a member's activity snapshot.
type Stats struct {
	XP              int64 `json:"xp"`
	DailyMessages   int64 `json:"daily_messages"`
	WeeklyMessages  int64 `json:"weekly_messages"`
	MonthlyMessages int64 `json:"monthly_messages"`
	AllTimeMessages int64 `json:"all_time_messages"`
}

// Messages returns the counter of the given bucket, 0 for unknown buckets.
func (s Stats) Messages(b Bucket) int64 {
	switch b {
	case BucketDaily:
		return s.DailyMessages
	case BucketWeekly:
		return s.WeeklyMessages
	case BucketMonthly:
		return s.MonthlyMessages
	case BucketAllTime:
		return s.AllTimeMessages
	}
	return 0
}

// Level is the derived level of the snapshot.
func (s Stats) Level() int {
	return Level(s.XP)
}

// Level computes floor(sqrt(xp / 100)). Negative XP is level 0.
func Level(xp int64) int {
	if xp < 0 {
		return 0
	}
	return int(math.Sqrt(float64(xp) / 100))
}

// XPForLevel is the minimum XP of a level.
func XPForLevel(level int) int64 {
	return int64(level) * int64(level) * 100
}
