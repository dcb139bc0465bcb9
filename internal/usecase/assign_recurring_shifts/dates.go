package assign_recurring_shifts

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// expandDates возвращает рабочие даты правила в диапазоне [start, end] без повторов
func expandDates(rule *rrule.RRule, start, end time.Time) []time.Time {
	from, to := domain.DateOnly(start), domain.DateOnly(end)
	rule.DTStart(from)

	occurrences := rule.Between(from, to, true)

	dates := make([]time.Time, 0, len(occurrences))
	seen := make(map[time.Time]bool, len(occurrences))
	for _, occurrence := range occurrences {
		day := domain.DateOnly(occurrence)
		if seen[day] {
			continue
		}
		seen[day] = true
		dates = append(dates, day)
	}

	return dates
}
