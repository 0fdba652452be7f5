package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall-clock time. Day keys are derived from
// the local civil date, so Now must not be converted to UTC here.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
