package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const uniqueViolation = pq.ErrorCode("23505")

// slotConstraint имя constraint-а, защищающего слот от double-booking
const slotConstraint = "uq_appointments_professional_date_time"

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на прием
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Атомарность гарантирует база данных: при попытке вставить запись на уже
// занятую тройку (professional_id, appointment_date, start_time) PostgreSQL
// возвращает нарушение unique constraint, которое транслируется в ErrSlotTaken.
// Из двух конкурентных вставок одного слота ровно одна получит ErrSlotTaken -
// никакие блокировки на уровне приложения для этого не нужны
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"professional_id",
			"service_id",
			"appointment_date",
			"start_time",
			"status",
			"client_name",
			"service_name",
			"duration_minutes",
			"notes",
		).
		Values(
			appt.ClientID,
			appt.ProfessionalID,
			appt.ServiceID,
			appt.Date,
			appt.StartTime,
			appt.Status,
			appt.ClientName,
			appt.ServiceName,
			appt.DurationMinutes,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetTakenTimes возвращает занятые времена записей профессионала на дату
// Учитываются записи ВО ВСЕХ статусах: отмененная запись продолжает занимать
// свой слот (наблюдаемое поведение системы, см. DESIGN.md)
func (r *Repository) GetTakenTimes(ctx context.Context, professionalID int64, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From("appointments").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"appointment_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTakenTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTakenTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	taken := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetTakenTimes - scan start_time: %v", ErrScanRow, err)
		}
		taken = append(taken, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTakenTimes - rows error: %v", ErrScanRow, err)
	}

	return taken, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointmentColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.ProfessionalID,
		&appt.ServiceID,
		&appt.Date,
		&appt.StartTime,
		&appt.Status,
		&appt.ClientName,
		&appt.ServiceName,
		&appt.DurationMinutes,
		&appt.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// GetByClientWithFilter получает записи клиента
// Сортировка: сначала новые (по дате и времени по убыванию)
func (r *Repository) GetByClientWithFilter(ctx context.Context, filter domain.ClientAppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointmentColumns().
		Where(squirrel.Eq{"client_id": filter.ClientID}).
		OrderBy("appointment_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// selectAppointmentColumns возвращает SELECT со всеми колонками записи
func selectAppointmentColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"client_id",
		"professional_id",
		"service_id",
		"appointment_date",
		"start_time",
		"status",
		"client_name",
		"service_name",
		"duration_minutes",
		"notes",
		"created_at",
		"updated_at",
	).From("appointments")
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.ClientID,
			&appt.ProfessionalID,
			&appt.ServiceID,
			&appt.Date,
			&appt.StartTime,
			&appt.Status,
			&appt.ClientName,
			&appt.ServiceName,
			&appt.DurationMinutes,
			&appt.Notes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// isSlotConflict проверяет, что ошибка - нарушение constraint-а уникальности слота
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != uniqueViolation {
		return false
	}
	// Имя constraint-а проверяем, чтобы не перепутать с другими unique нарушениями
	return pqErr.Constraint == slotConstraint || pqErr.Constraint == ""
}
