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

// FeeFilter narrows fee list queries.
type FeeFilter struct {
	StudentID *int64
}

// FeeRepository handles database operations for fee installments
type FeeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeeRepository creates a new FeeRepository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const feeSelect = `
	f.id, f.student_id, f.amount, f.mode, f.utr, f.date_collected, f.collected_by,
	u.username,
	i.name
`

const feeFrom = "fees f"

func scanFee(row pgx.Row) (*models.Fee, error) {
	var fee models.Fee
	err := row.Scan(
		&fee.ID,
		&fee.StudentID,
		&fee.Amount,
		&fee.Mode,
		&fee.UTR,
		&fee.DateCollected,
		&fee.CollectedByID,
		&fee.CollectedByName,
		&fee.StudentName,
	)
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *FeeRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(feeSelect).
		From(feeFrom).
		LeftJoin("users u ON u.id = f.collected_by").
		LeftJoin("students s ON s.id = f.student_id").
		LeftJoin("inquiries i ON i.id = s.inquiry_id")
}

// Create inserts a new fee record
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) (int64, error) {
	query := `
		INSERT INTO fees (student_id, amount, mode, utr, date_collected, collected_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		fee.StudentID,
		fee.Amount,
		fee.Mode,
		fee.UTR,
		fee.DateCollected,
		fee.CollectedByID,
	).Scan(&fee.ID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrStudentNotFound
		}
		return 0, fmt.Errorf("error creating fee: %w", err)
	}
	return fee.ID, nil
}

// GetByID retrieves one fee record
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	sql, args, err := r.baseSelect().Where(squirrel.Eq{"f.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get fee query: %w", err)
	}

	fee, err := scanFee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}
	return fee, nil
}

// List retrieves fee records matching the filter, latest first
func (r *FeeRepository) List(ctx context.Context, filter FeeFilter) ([]models.Fee, error) {
	builder := r.baseSelect().OrderBy("f.date_collected DESC", "f.id DESC")
	if filter.StudentID != nil {
		builder = builder.Where(squirrel.Eq{"f.student_id": *filter.StudentID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list fees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing fees: %w", err)
	}
	defer rows.Close()

	fees := []models.Fee{}
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning fee row: %w", err)
		}
		fees = append(fees, *fee)
	}
	return fees, rows.Err()
}

// Update rewrites the mutable columns of a fee record
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	query := `
		UPDATE fees
		SET amount = $1, mode = $2, utr = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, fee.Amount, fee.Mode, fee.UTR, fee.ID)
	if err != nil {
		return fmt.Errorf("error updating fee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}
	return nil
}

// Delete removes a fee record
func (r *FeeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting fee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}
	return nil
}
