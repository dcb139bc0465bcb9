package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// generateTimeSlots генерирует стартовые времена от открытия с шагом step
// Услуга длительностью duration должна закончиться не позже закрытия
// Для сегодняшней даты прошедшие слоты отбрасываются
func generateTimeSlots(
	hours WorkingHours,
	duration int,
	requestDate time.Time,
	now time.Time,
) []types.TimeString {
	if hours.StepMinutes <= 0 || !hours.Open.IsBefore(hours.Close) {
		return []types.TimeString{}
	}

	// Шаг 1: Все слоты от открытия до закрытия
	allSlots := make([]types.TimeString, 0)
	for current := hours.Open; current.IsBefore(hours.Close); {
		end, err := current.AddMinutes(duration)
		if err != nil || end.IsAfter(hours.Close) {
			break
		}

		allSlots = append(allSlots, current)

		current, err = current.AddMinutes(hours.StepMinutes)
		if err != nil {
			// следующий слот перешел через полночь
			break
		}
	}

	// Шаг 2: Дата не сегодня - возвращаем все слоты
	if !domain.DateOnly(requestDate).Equal(domain.DateOnly(now)) {
		return allSlots
	}

	// Шаг 3: Сегодня - только слоты, которые еще не начались
	currentTime := types.NewTimeString(now)
	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.IsBefore(currentTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots
}

// toSlot переводит доступность в модель ответа
func toSlot(slot domain.AvailableSlot) Slot {
	return Slot{
		StartTime:       slot.StartTime,
		DurationMinutes: slot.DurationMinutes,
		Shift:           string(slot.Bucket),
		FreeStaff:       slot.FreeStaff,
		OnShift:         slot.OnShift,
		OccupancyRate:   slot.OccupancyRate(),
	}
}
