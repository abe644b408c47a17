package cancellation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/crosscourts/court-booking-service/internal/domain"
	"github.com/crosscourts/court-booking-service/pkg/dbmetrics"
	"github.com/crosscourts/court-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий одноразовых кодов подтверждения отмены
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кодов отмены
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create выпускает новый код для бронирования, предварительно удаляя все
// прежние неиспользованные коды - валиден только последний выпущенный.
// Вызывается в транзакции, чтобы supersede и вставка были атомарны.
func (r *Repository) Create(ctx context.Context, request *domain.CancellationRequest) (*domain.CancellationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("cancellation_codes").
		Where(squirrel.Eq{"booking_id": request.BookingID, "verified": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Create - supersede previous codes: %v", ErrExecQuery, err)
	}

	insertQuery, insertArgs, err := psqlbuilder.Insert("cancellation_codes").
		Columns("booking_id", "code", "issued_at", "expires_at", "verified").
		Values(request.BookingID, request.Code, request.IssuedAt, request.ExpiresAt, false).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&request.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return request, nil
}

// GetLatestByBooking получает последний выпущенный код для бронирования
func (r *Repository) GetLatestByBooking(ctx context.Context, bookingID int64) (*domain.CancellationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"booking_id",
		"code",
		"issued_at",
		"expires_at",
		"verified",
	).
		From("cancellation_codes").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("issued_at DESC, id DESC").
		Limit(1)

	// В транзакции блокируем строку: verify должен быть одноразовым
	// даже при конкурентных попытках с одним и тем же кодом
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByBooking - build select query: %v", ErrBuildQuery, err)
	}

	var request domain.CancellationRequest
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&request.BookingID,
		&request.Code,
		&request.IssuedAt,
		&request.ExpiresAt,
		&request.Verified,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByBooking - scan request: %v", ErrScanRow, err)
	}

	return &request, nil
}

// MarkVerified помечает код использованным (одноразовость)
func (r *Repository) MarkVerified(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cancellation_codes").
		Set("verified", true).
		Where(squirrel.Eq{"id": id, "verified": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkVerified - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkVerified - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkVerified - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}
