package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения окон доступности профессионалов
// Окна настраиваются администратором вне этого сервиса, здесь только чтение
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessionalAndWeekday возвращает окна доступности профессионала
// на день недели (0 = понедельник ... 6 = воскресенье)
// Порядок окон - порядок вставки (по id): генератор слотов обязан
// обходить окна именно в этом порядке
func (r *Repository) GetByProfessionalAndWeekday(ctx context.Context, professionalID int64, weekday int) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"weekday",
		"start_time",
		"end_time",
	).
		From("availability_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"weekday": weekday}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.AvailabilityWindow, 0)
	for rows.Next() {
		var w domain.AvailabilityWindow
		if err := rows.Scan(
			&w.ID,
			&w.ProfessionalID,
			&w.Weekday,
			&w.StartTime,
			&w.EndTime,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByProfessionalAndWeekday - scan window: %v", ErrScanRow, err)
		}
		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndWeekday - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
