package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func window(id int64, start, end types.TimeString) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ID:             id,
		ProfessionalID: 1,
		Weekday:        0,
		StartTime:      start,
		EndTime:        end,
	}
}

func noTaken() map[types.TimeString]struct{} {
	return map[types.TimeString]struct{}{}
}

func TestGenerateSlots_HalfOpenInterval(t *testing.T) {
	// Окно [08:00, 09:00) с шагом 30 дает ровно 08:00 и 08:30, но не 09:00
	slots := generateSlots(
		[]*domain.AvailabilityWindow{window(1, "08:00", "09:00")},
		noTaken(),
		30,
	)

	assert.Equal(t, []types.TimeString{"08:00", "08:30"}, slots)
}

func TestGenerateSlots_TakenSlotExcluded(t *testing.T) {
	slots := generateSlots(
		[]*domain.AvailabilityWindow{window(1, "08:00", "09:00")},
		map[types.TimeString]struct{}{"08:30": {}},
		30,
	)

	assert.Equal(t, []types.TimeString{"08:00"}, slots)
}

func TestGenerateSlots_NoWindows(t *testing.T) {
	slots := generateSlots(nil, noTaken(), 30)

	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGenerateSlots_TailTruncated(t *testing.T) {
	// Окно [08:00, 08:45) с шагом 30: слот 08:30 закончился бы в 09:00,
	// но точка 08:30 < 08:45, поэтому эмитится только граница интервала.
	// Остаток в 15 минут отбрасывается, укороченный слот не создается
	slots := generateSlots(
		[]*domain.AvailabilityWindow{window(1, "08:00", "08:45")},
		noTaken(),
		30,
	)

	assert.Equal(t, []types.TimeString{"08:00", "08:30"}, slots)
}

func TestGenerateSlots_OverlappingWindowsProduceDuplicates(t *testing.T) {
	// Два пересекающихся окна, покрывающих 08:00, дают 08:00 дважды -
	// дедупликация намеренно не выполняется
	slots := generateSlots(
		[]*domain.AvailabilityWindow{
			window(1, "08:00", "08:30"),
			window(2, "08:00", "09:00"),
		},
		noTaken(),
		30,
	)

	assert.Equal(t, []types.TimeString{"08:00", "08:00", "08:30"}, slots)
}

func TestGenerateSlots_WindowOrderPreserved(t *testing.T) {
	// Порядок вывода следует порядку окон, кросс-оконная сортировка отсутствует
	slots := generateSlots(
		[]*domain.AvailabilityWindow{
			window(1, "14:00", "15:00"),
			window(2, "08:00", "09:00"),
		},
		noTaken(),
		60,
	)

	assert.Equal(t, []types.TimeString{"14:00", "08:00"}, slots)
}

func TestGenerateSlots_MalformedWindow(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
	}{
		{name: "start equals end", start: "09:00", end: "09:00"},
		{name: "start after end", start: "10:00", end: "09:00"},
		{name: "unparsable start", start: "morning", end: "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := generateSlots(
				[]*domain.AvailabilityWindow{window(1, tt.start, tt.end)},
				noTaken(),
				30,
			)
			assert.Empty(t, slots)
		})
	}
}

func TestGenerateSlots_NonPositiveStep(t *testing.T) {
	slots := generateSlots(
		[]*domain.AvailabilityWindow{window(1, "08:00", "09:00")},
		noTaken(),
		0,
	)

	assert.Empty(t, slots)
}

func TestGenerateSlots_StepLargerThanWindow(t *testing.T) {
	slots := generateSlots(
		[]*domain.AvailabilityWindow{window(1, "08:00", "08:20")},
		noTaken(),
		30,
	)

	assert.Equal(t, []types.TimeString{"08:00"}, slots)
}
