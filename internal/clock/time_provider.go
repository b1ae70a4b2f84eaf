package clock

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/kokoro-battle/internal/clock TimeProvider

// TimeProvider supplies the current time. Buff expiry and history timestamps read through it.
type TimeProvider interface {
	Now() time.Time
}

type systemTimeProvider struct{}

// System returns a TimeProvider backed by time.Now
func System() TimeProvider {
	return systemTimeProvider{}
}

func (systemTimeProvider) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant
type Fixed time.Time

// Now implements TimeProvider
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
