package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID int64     // ID профессионала
	ServiceID      int64     // ID услуги (определяет шаг слотов)
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	ProfessionalID  int64              // ID профессионала
	ServiceID       int64              // ID услуги
	DurationMinutes int                // Длительность слота (шаг генерации)
	Slots           []types.TimeString // Доступные слоты в порядке генерации
}

// Contains проверяет, что слот присутствует в списке
// Используется при создании записи для детекции устаревшего выбора слота
func (r *Response) Contains(slot types.TimeString) bool {
	for _, s := range r.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
