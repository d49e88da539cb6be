package utils

import "time"

// China Standard Time (CST, +08:00)
var cnLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Shanghai"); err == nil {
		return loc
	}
	return time.FixedZone("CST", 8*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsCN converts an epoch value in seconds to China time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsCN(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(cnLoc)
}

func FormatRFC3339CN(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(cnLoc).Format(time.RFC3339)
}
