package appointment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
	"github.com/sirisampada/SSCC-BookingService/pkg/dbmetrics"
	"github.com/sirisampada/SSCC-BookingService/pkg/psqlbuilder"
)

// PostgresRepository альтернативная реализация репозитория записей поверх PostgreSQL
// Атомарность резервирования обеспечивается сериализуемой транзакцией
// (txmanager.DoSerializable), в которой usecase выполняет резервирование и вставку
type PostgresRepository struct {
	db DBExecutor
}

// NewPostgresRepository создает репозиторий поверх executor (*sql.DB или *dbmetrics.DB)
func NewPostgresRepository(db DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByDate возвращает все записи на указанную дату в порядке создания
// Внутри транзакции читает строки с блокировкой FOR UPDATE
func (r *PostgresRepository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"booking_date",
		"slot_label",
		"parent_name",
		"phone",
		"address",
		"patients",
		"token",
		"created_at",
	).
		From(pgTableAppointments).
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ReserveSlot проверяет занятость слота и выдаёт номер очереди
// Должен вызываться внутри сериализуемой транзакции: проверка количества
// и последующая вставка записи атомарны только в её рамках
func (r *PostgresRepository) ReserveSlot(ctx context.Context, date time.Time, slotLabel string, capacity int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	dateKey := date.Format(domain.DateFormat)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From(pgTableAppointments).
		Where(squirrel.Eq{"booking_date": dateKey, "slot_label": slotLabel}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReserveSlot - build count query: %v", ErrBuildQuery, err)
	}

	var occupied int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&occupied); err != nil {
		return 0, fmt.Errorf("%w: ReserveSlot - count appointments: %v", ErrExecQuery, err)
	}

	if occupied >= capacity {
		return 0, ErrSlotFull
	}

	// Порядковый номер очереди на дату: атомарный инкремент через upsert
	tokenQuery, tokenArgs, err := psqlbuilder.Insert(pgTableSlotTokens).
		Columns("booking_date", "next_token").
		Values(dateKey, 1).
		Suffix("ON CONFLICT (booking_date) DO UPDATE SET next_token = slot_tokens.next_token + 1 RETURNING next_token").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReserveSlot - build token query: %v", ErrBuildQuery, err)
	}

	var token int64
	if err := executor.QueryRowContext(ctx, tokenQuery, tokenArgs...).Scan(&token); err != nil {
		return 0, fmt.Errorf("%w: ReserveSlot - allocate token: %v", ErrExecQuery, err)
	}

	return token, nil
}

// ReleaseSlot для PostgreSQL ничего не делает: резервирование живет внутри
// транзакции, и откат транзакции возвращает место сам
func (r *PostgresRepository) ReleaseSlot(ctx context.Context, date time.Time, slotLabel string) error {
	return nil
}

// Create сохраняет новую запись
func (r *PostgresRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	patientsJSON, err := json.Marshal(appt.Patients)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal patients: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert(pgTableAppointments).
		Columns(
			"id",
			"booking_date",
			"slot_label",
			"parent_name",
			"phone",
			"address",
			"patients",
			"token",
		).
		Values(
			appt.ID,
			appt.Date.Format(domain.DateFormat),
			appt.SlotLabel,
			appt.ParentName,
			appt.Phone,
			appt.Address,
			patientsJSON,
			appt.Token,
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

	appt.CreatedAt = createdAt.Time
	return appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var (
			appt         domain.Appointment
			patientsJSON []byte
			createdAt    sql.NullTime
		)

		err := rows.Scan(
			&appt.ID,
			&appt.Date,
			&appt.SlotLabel,
			&appt.ParentName,
			&appt.Phone,
			&appt.Address,
			&patientsJSON,
			&appt.Token,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		if err := json.Unmarshal(patientsJSON, &appt.Patients); err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - unmarshal patients: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
