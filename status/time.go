package status

import "time"

// monotonicMillis returns the current time in milliseconds, matching the
// timestamp format vanilla clients put in Ping Request.
func monotonicMillis() int64 {
	return time.Now().UnixMilli()
}
