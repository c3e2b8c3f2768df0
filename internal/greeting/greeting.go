package greeting

import (
	"time"
	_ "time/tzdata"
)

const (
	Morning   = "Bom dia"
	Afternoon = "Boa tarde"
	Evening   = "Boa noite"
)

// смещение от UTC, если часовой пояс не удалось загрузить
const fallbackOffset = -3

// LocalHour возвращает час в часовом поясе tz.
func LocalHour(tz string, now time.Time) int {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return now.In(loc).Hour()
		}
	}
	return (now.UTC().Hour() + fallbackOffset + 24) % 24
}

func ForHour(hour int) string {
	switch {
	case hour >= 5 && hour <= 11:
		return Morning
	case hour >= 12 && hour <= 17:
		return Afternoon
	default:
		return Evening
	}
}

func Select(tz string, now time.Time) string {
	return ForHour(LocalHour(tz, now))
}
