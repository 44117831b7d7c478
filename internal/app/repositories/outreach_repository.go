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
)

// OutreachFilter narrows outreach list queries; OfficerID is the
// placement officer scope.
type OutreachFilter struct {
	OfficerID *int64
}

// OutreachRepository handles database operations for placement outreach logs
type OutreachRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOutreachRepository creates a new OutreachRepository
func NewOutreachRepository(db *pgxpool.Pool) *OutreachRepository {
	return &OutreachRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const outreachSelect = `
	o.id, o.officer_id, o.company_name, o.contact_name, o.mode,
	o.phone_email, o.remark, o.date,
	u.username
`

func scanOutreach(row pgx.Row) (*models.PlacementOutreach, error) {
	var o models.PlacementOutreach
	err := row.Scan(
		&o.ID,
		&o.OfficerID,
		&o.CompanyName,
		&o.ContactName,
		&o.Mode,
		&o.PhoneEmail,
		&o.Remark,
		&o.Date,
		&o.OfficerName,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts a new outreach record
func (r *OutreachRepository) Create(ctx context.Context, o *models.PlacementOutreach) (int64, error) {
	query := `
		INSERT INTO placement_outreach (
			officer_id, company_name, contact_name, mode, phone_email, remark, date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		o.OfficerID,
		o.CompanyName,
		o.ContactName,
		o.Mode,
		o.PhoneEmail,
		o.Remark,
		o.Date,
	).Scan(&o.ID)

	if err != nil {
		return 0, fmt.Errorf("error creating outreach: %w", err)
	}
	return o.ID, nil
}

// GetByID retrieves one outreach record, optionally restricted to an officer
func (r *OutreachRepository) GetByID(ctx context.Context, id int64, officerID *int64) (*models.PlacementOutreach, error) {
	builder := r.sb.Select(outreachSelect).
		From("placement_outreach o").
		LeftJoin("users u ON u.id = o.officer_id").
		Where(squirrel.Eq{"o.id": id})
	if officerID != nil {
		builder = builder.Where(squirrel.Eq{"o.officer_id": *officerID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get outreach query: %w", err)
	}

	o, err := scanOutreach(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOutreachNotFound
		}
		return nil, fmt.Errorf("error retrieving outreach: %w", err)
	}
	return o, nil
}

// List retrieves outreach records matching the filter, newest first
func (r *OutreachRepository) List(ctx context.Context, filter OutreachFilter) ([]models.PlacementOutreach, error) {
	builder := r.sb.Select(outreachSelect).
		From("placement_outreach o").
		LeftJoin("users u ON u.id = o.officer_id").
		OrderBy("o.date DESC", "o.id DESC")
	if filter.OfficerID != nil {
		builder = builder.Where(squirrel.Eq{"o.officer_id": *filter.OfficerID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list outreach query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing outreach: %w", err)
	}
	defer rows.Close()

	records := []models.PlacementOutreach{}
	for rows.Next() {
		o, err := scanOutreach(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning outreach row: %w", err)
		}
		records = append(records, *o)
	}
	return records, rows.Err()
}

// Update rewrites the mutable columns of an outreach record
func (r *OutreachRepository) Update(ctx context.Context, o *models.PlacementOutreach) error {
	query := `
		UPDATE placement_outreach
		SET company_name = $1, contact_name = $2, mode = $3, phone_email = $4, remark = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		o.CompanyName,
		o.ContactName,
		o.Mode,
		o.PhoneEmail,
		o.Remark,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating outreach: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOutreachNotFound
	}
	return nil
}

// Delete removes an outreach record
func (r *OutreachRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM placement_outreach WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting outreach: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOutreachNotFound
	}
	return nil
}
