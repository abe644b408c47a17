package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/crosscourts/court-booking-service/internal/domain"
	"github.com/crosscourts/court-booking-service/pkg/dbmetrics"
	"github.com/crosscourts/court-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий сеток слотов: кастомные override-сетки на
// конкретную дату и шаблоны слотов по умолчанию для корта
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCustomSlots получает кастомную сетку для (корт, дата).
// Возвращает пустой слайс, если override для этой даты не сохранялся -
// в этом случае действует шаблон корта.
func (r *Repository) GetCustomSlots(ctx context.Context, courtID int64, date time.Time) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"court_id",
		"slot_date",
		"start_time",
		"end_time",
		"label",
	).
		From("court_custom_slots").
		Where(squirrel.Eq{"court_id": courtID, "slot_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		var slot domain.Slot
		err := rows.Scan(
			&slot.ID,
			&slot.CourtID,
			&slot.Date,
			&slot.Range.Start,
			&slot.Range.End,
			&slot.Label,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetCustomSlots - scan row: %v", ErrScanRow, err)
		}
		slot.State = domain.SlotAvailable
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCustomSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ReplaceCustomSlots заменяет сетку (корт, дата) целиком: удаляет прежний
// override и вставляет новый набор слотов. Вызывается только внутри
// транзакции - частично применённая замена недопустима.
func (r *Repository) ReplaceCustomSlots(ctx context.Context, courtID int64, date time.Time, seeds []domain.SlotSeed) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("court_custom_slots").
		Where(squirrel.Eq{"court_id": courtID, "slot_date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceCustomSlots - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceCustomSlots - execute delete: %v", ErrExecQuery, err)
	}

	slots := make([]domain.Slot, 0, len(seeds))
	for _, seed := range seeds {
		insertQuery, insertArgs, err := psqlbuilder.Insert("court_custom_slots").
			Columns("court_id", "slot_date", "start_time", "end_time", "label").
			Values(courtID, date, seed.Range.Start, seed.Range.End, seed.Label).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceCustomSlots - build insert query: %v", ErrBuildQuery, err)
		}

		var id int64
		if err := executor.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ReplaceCustomSlots - execute insert: %v", ErrExecQuery, err)
		}

		slots = append(slots, domain.Slot{
			ID:      id,
			CourtID: courtID,
			Date:    date,
			Range:   seed.Range,
			Label:   seed.Label,
			State:   domain.SlotAvailable,
		})
	}

	return slots, nil
}

// GetTemplate получает шаблон слотов корта.
// Возвращает пустой слайс, если у корта нет собственного шаблона -
// тогда действует встроенный domain.DefaultTemplate.
func (r *Repository) GetTemplate(ctx context.Context, courtID int64) ([]domain.SlotSeed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"start_time",
		"end_time",
		"label",
	).
		From("court_slot_templates").
		Where(squirrel.Eq{"court_id": courtID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	seeds := make([]domain.SlotSeed, 0)
	for rows.Next() {
		var seed domain.SlotSeed
		var label sql.NullString

		if err := rows.Scan(&seed.Range.Start, &seed.Range.End, &label); err != nil {
			return nil, fmt.Errorf("%w: GetTemplate - scan row: %v", ErrScanRow, err)
		}
		seed.Label = label.String
		seeds = append(seeds, seed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTemplate - rows error: %v", ErrScanRow, err)
	}

	return seeds, nil
}
