package get_available_slots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateSlots генерирует список доступных слотов из окон доступности
// и множества занятых времен
//
// Окна обходятся в переданном порядке, результаты окон конкатенируются.
// Дедупликация между пересекающимися окнами НЕ выполняется: два окна,
// покрывающих одно время, дают это время дважды. Сортировка результата
// тоже не выполняется - внутри окна порядок хронологический сам по себе.
func generateSlots(
	windows []*domain.AvailabilityWindow,
	taken map[types.TimeString]struct{},
	stepMinutes int,
) []types.TimeString {
	slots := make([]types.TimeString, 0)

	// Защита от бесконечного цикла: неположительный шаг не дает слотов
	if stepMinutes <= 0 {
		return slots
	}

	for _, window := range windows {
		slots = append(slots, generateWindowSlots(window, taken, stepMinutes)...)
	}

	return slots
}

// generateWindowSlots перечисляет свободные моменты времени одного окна
//
// Интервал полуоткрытый [start, end): точка, равная end, не эмитится,
// неполный хвост окна отбрасывается. Окно с start >= end дает пустой
// результат без ошибки (качество данных - внешняя забота).
// Окно с некорректным форматом времени пропускается
func generateWindowSlots(
	window *domain.AvailabilityWindow,
	taken map[types.TimeString]struct{},
	stepMinutes int,
) []types.TimeString {
	start, err := window.StartTime.Minutes()
	if err != nil {
		return nil
	}

	end, err := window.EndTime.Minutes()
	if err != nil {
		return nil
	}

	slots := make([]types.TimeString, 0)

	for m := start; m < end; m += stepMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}

		// Занятый слот пропускаем, остальные эмитим
		if _, ok := taken[slot]; ok {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}

// takenSet строит множество занятых времен из списка
func takenSet(times []types.TimeString) map[types.TimeString]struct{} {
	set := make(map[types.TimeString]struct{}, len(times))
	for _, t := range times {
		set[t] = struct{}{}
	}
	return set
}
