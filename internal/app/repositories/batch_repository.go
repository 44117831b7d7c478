package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/dberrors"
)

// BatchFilter narrows batch list queries; TrainerID is the trainer scope.
type BatchFilter struct {
	TrainerID *int64
}

// BatchRepository handles database operations for training batches
type BatchRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBatchRepository creates a new BatchRepository
func NewBatchRepository(db *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const batchSelect = `
	b.id, b.course, b.batch_name, b.trainer_id, b.start_date,
	b.classroom_name, b.start_time, b.end_time, b.days_of_week,
	b.zoom_host_account, b.zoom_host_password, b.zoom_meeting_id,
	b.zoom_meeting_passcode, b.zoom_link,
	u.username
`

func scanBatch(row pgx.Row) (*models.Batch, error) {
	var b models.Batch
	err := row.Scan(
		&b.ID,
		&b.Course,
		&b.BatchName,
		&b.TrainerID,
		&b.StartDate,
		&b.ClassroomName,
		&b.StartTime,
		&b.EndTime,
		&b.DaysOfWeek,
		&b.ZoomHostAccount,
		&b.ZoomHostPassword,
		&b.ZoomMeetingID,
		&b.ZoomMeetingPasscode,
		&b.ZoomLink,
		&b.TrainerName,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new batch
func (r *BatchRepository) Create(ctx context.Context, b *models.Batch) (int64, error) {
	query := `
		INSERT INTO batches (
			course, batch_name, trainer_id, start_date, classroom_name,
			start_time, end_time, days_of_week, zoom_host_account,
			zoom_host_password, zoom_meeting_id, zoom_meeting_passcode, zoom_link
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		b.Course,
		b.BatchName,
		b.TrainerID,
		b.StartDate,
		b.ClassroomName,
		b.StartTime,
		b.EndTime,
		b.DaysOfWeek,
		b.ZoomHostAccount,
		b.ZoomHostPassword,
		b.ZoomMeetingID,
		b.ZoomMeetingPasscode,
		b.ZoomLink,
	).Scan(&b.ID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error creating batch: %w", err)
	}
	return b.ID, nil
}

// GetByID retrieves one batch, optionally restricted to a trainer
func (r *BatchRepository) GetByID(ctx context.Context, id int64, trainerID *int64) (*models.Batch, error) {
	builder := r.sb.Select(batchSelect).
		From("batches b").
		LeftJoin("users u ON u.id = b.trainer_id").
		Where(squirrel.Eq{"b.id": id})
	if trainerID != nil {
		builder = builder.Where(squirrel.Eq{"b.trainer_id": *trainerID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get batch query: %w", err)
	}

	b, err := scanBatch(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBatchNotFound
		}
		return nil, fmt.Errorf("error retrieving batch: %w", err)
	}
	return b, nil
}

// List retrieves batches matching the filter, newest start date first
func (r *BatchRepository) List(ctx context.Context, filter BatchFilter) ([]models.Batch, error) {
	builder := r.sb.Select(batchSelect).
		From("batches b").
		LeftJoin("users u ON u.id = b.trainer_id").
		OrderBy("b.start_date DESC", "b.id DESC")
	if filter.TrainerID != nil {
		builder = builder.Where(squirrel.Eq{"b.trainer_id": *filter.TrainerID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list batches query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing batches: %w", err)
	}
	defer rows.Close()

	batches := []models.Batch{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning batch row: %w", err)
		}
		batches = append(batches, *b)
	}
	return batches, rows.Err()
}

// Update rewrites all mutable columns of a batch
func (r *BatchRepository) Update(ctx context.Context, b *models.Batch) error {
	query := `
		UPDATE batches
		SET course = $1, batch_name = $2, trainer_id = $3, start_date = $4,
		    classroom_name = $5, start_time = $6, end_time = $7,
		    days_of_week = $8, zoom_host_account = $9, zoom_host_password = $10,
		    zoom_meeting_id = $11, zoom_meeting_passcode = $12, zoom_link = $13
		WHERE id = $14
	`

	tag, err := r.db.Exec(ctx, query,
		b.Course,
		b.BatchName,
		b.TrainerID,
		b.StartDate,
		b.ClassroomName,
		b.StartTime,
		b.EndTime,
		b.DaysOfWeek,
		b.ZoomHostAccount,
		b.ZoomHostPassword,
		b.ZoomMeetingID,
		b.ZoomMeetingPasscode,
		b.ZoomLink,
		b.ID,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error updating batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}
	return nil
}

// Delete removes a batch
func (r *BatchRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}
	return nil
}
