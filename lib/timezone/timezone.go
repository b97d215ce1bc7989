package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Seoul")
	if err != nil {
		panic(err)
	}
}

// force the clock into KST because the open API publishes dataset
// timestamps in Seoul local time while collectors may run anywhere
func Now() time.Time {
	return time.Now().In(Location)
}

// Stamp formats a collection timestamp the way it appears in image
// footers and log lines.
func Stamp(t time.Time) string {
	return t.In(Location).Format("2006-01-02 15:04 KST")
}
