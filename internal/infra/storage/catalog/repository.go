package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий справочника профессионалов и услуг
// Справочник наполняется администратором вне этого сервиса, здесь только чтение
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetProfessionalByID получает профессионала по ID
func (r *Repository) GetProfessionalByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"speciality",
		"created_at",
	).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessionalByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Professional
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.FullName,
		&p.Speciality,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessionalByID - scan professional: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	return &p, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"created_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.DurationMinutes,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	return &s, nil
}

// ListProfessionals возвращает всех профессионалов, отсортированных по имени
func (r *Repository) ListProfessionals(ctx context.Context) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"speciality",
		"created_at",
	).
		From("professionals").
		OrderBy("full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessionals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessionals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		var p domain.Professional
		var createdAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.FullName, &p.Speciality, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListProfessionals - scan professional: %v", ErrScanRow, err)
		}
		p.CreatedAt = createdAt.Time
		professionals = append(professionals, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProfessionals - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}

// ListServices возвращает все услуги, отсортированные по названию
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"created_at",
	).
		From("services").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		var createdAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan service: %v", ErrScanRow, err)
		}
		s.CreatedAt = createdAt.Time
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
