package prescription

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
	"github.com/sirisampada/SSCC-BookingService/pkg/dbmetrics"
	"github.com/sirisampada/SSCC-BookingService/pkg/psqlbuilder"
)

const pgTablePrescriptions = "prescriptions"

// PostgresRepository альтернативная реализация репозитория назначений поверх PostgreSQL
type PostgresRepository struct {
	db dbmetrics.DBExecutor
}

// NewPostgresRepository создает репозиторий поверх executor (*sql.DB или *dbmetrics.DB)
func NewPostgresRepository(db dbmetrics.DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create сохраняет новое назначение
func (r *PostgresRepository) Create(ctx context.Context, p *domain.Prescription) (*domain.Prescription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(pgTablePrescriptions).
		Columns(
			"id",
			"prescription_date",
			"patient_name",
			"patient_age",
			"disease",
			"medicine",
			"notes",
		).
		Values(
			p.ID,
			p.Date.Format(domain.DateFormat),
			p.PatientName,
			p.PatientAge,
			p.Disease,
			p.Medicine,
			p.Notes,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	return p, nil
}

// GetByDate возвращает назначения за указанную дату в порядке создания
func (r *PostgresRepository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Prescription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"prescription_date",
		"patient_name",
		"patient_age",
		"disease",
		"medicine",
		"notes",
		"created_at",
	).
		From(pgTablePrescriptions).
		Where(squirrel.Eq{"prescription_date": date.Format(domain.DateFormat)}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prescriptions := make([]*domain.Prescription, 0)
	for rows.Next() {
		var (
			p         domain.Prescription
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&p.ID,
			&p.Date,
			&p.PatientName,
			&p.PatientAge,
			&p.Disease,
			&p.Medicine,
			&p.Notes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		prescriptions = append(prescriptions, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows error: %v", ErrScanRow, err)
	}

	return prescriptions, nil
}
