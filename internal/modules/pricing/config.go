package pricing

// Config carries the night-shift window and surcharge. Both boundaries are
// minutes from midnight; the window wraps past midnight
// (start >= NightStart OR start < NightEnd).
type Config struct {
	NightStart     int
	NightEnd       int
	NightSurcharge float64
}

const (
	DefaultNightStart     = 19*60 + 30 // 19:30, first night minute
	DefaultNightEnd       = 6 * 60     // 06:00, first non-night minute
	DefaultNightSurcharge = 50.0
)

func DefaultConfig() Config {
	return Config{
		NightStart:     DefaultNightStart,
		NightEnd:       DefaultNightEnd,
		NightSurcharge: DefaultNightSurcharge,
	}
}
