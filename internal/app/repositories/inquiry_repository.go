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

// InquiryFilter narrows inquiry list queries. CreatedBy is the scope
// predicate for counselors; Search matches name or mobile substrings.
type InquiryFilter struct {
	CreatedBy *int64
	Search    string
}

// InquiryRepository handles database operations for inquiries and follow-ups
type InquiryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// inquirySelect lists the columns every inquiry read shares: the row
// itself, the creator's username and the derived is_admitted flag.
const inquirySelect = `
	i.id, i.name, i.mobile, i.email, i.college, i.degree, i.branch,
	i.passout_year, i.interested_course, i.source, i.created_by, i.created_at,
	u.username,
	EXISTS (SELECT 1 FROM students s WHERE s.inquiry_id = i.id) AS is_admitted
`

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	var inq models.Inquiry
	err := row.Scan(
		&inq.ID,
		&inq.Name,
		&inq.Mobile,
		&inq.Email,
		&inq.College,
		&inq.Degree,
		&inq.Branch,
		&inq.PassoutYear,
		&inq.InterestedCourse,
		&inq.Source,
		&inq.CreatedByID,
		&inq.CreatedAt,
		&inq.CreatedByName,
		&inq.IsAdmitted,
	)
	if err != nil {
		return nil, err
	}
	return &inq, nil
}

// Create inserts a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, inq *models.Inquiry) (int64, error) {
	query := `
		INSERT INTO inquiries (
			name, mobile, email, college, degree, branch,
			passout_year, interested_course, source, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		inq.Name,
		inq.Mobile,
		inq.Email,
		inq.College,
		inq.Degree,
		inq.Branch,
		inq.PassoutYear,
		inq.InterestedCourse,
		inq.Source,
		inq.CreatedByID,
	).Scan(&inq.ID, &inq.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "inquiries_mobile_key") {
			return 0, apperrors.ErrMobileAlreadyExists
		}
		return 0, fmt.Errorf("error creating inquiry: %w", err)
	}
	return inq.ID, nil
}

// GetByID retrieves one inquiry. A non-nil createdBy restricts the row
// to that owner, so out-of-scope ids behave exactly like missing ones.
func (r *InquiryRepository) GetByID(ctx context.Context, id int64, createdBy *int64) (*models.Inquiry, error) {
	builder := r.sb.Select(inquirySelect).
		From("inquiries i").
		LeftJoin("users u ON u.id = i.created_by").
		Where(squirrel.Eq{"i.id": id})
	if createdBy != nil {
		builder = builder.Where(squirrel.Eq{"i.created_by": *createdBy})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get inquiry query: %w", err)
	}

	inq, err := scanInquiry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("error retrieving inquiry: %w", err)
	}

	followUps, err := r.ListFollowUps(ctx, inq.ID)
	if err != nil {
		return nil, err
	}
	inq.FollowUps = followUps
	return inq, nil
}

// List retrieves inquiries matching the filter, newest first
func (r *InquiryRepository) List(ctx context.Context, filter InquiryFilter) ([]models.Inquiry, error) {
	builder := r.sb.Select(inquirySelect).
		From("inquiries i").
		LeftJoin("users u ON u.id = i.created_by").
		OrderBy("i.created_at DESC", "i.id DESC")

	if filter.CreatedBy != nil {
		builder = builder.Where(squirrel.Eq{"i.created_by": *filter.CreatedBy})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"i.name": pattern},
			squirrel.ILike{"i.mobile": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list inquiries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning inquiry row: %w", err)
		}
		inquiries = append(inquiries, *inq)
	}
	return inquiries, rows.Err()
}

// Update rewrites all mutable columns of an inquiry
func (r *InquiryRepository) Update(ctx context.Context, inq *models.Inquiry) error {
	query := `
		UPDATE inquiries
		SET name = $1, mobile = $2, email = $3, college = $4, degree = $5,
		    branch = $6, passout_year = $7, interested_course = $8,
		    source = $9, created_by = $10
		WHERE id = $11
	`

	tag, err := r.db.Exec(ctx, query,
		inq.Name,
		inq.Mobile,
		inq.Email,
		inq.College,
		inq.Degree,
		inq.Branch,
		inq.PassoutYear,
		inq.InterestedCourse,
		inq.Source,
		inq.CreatedByID,
		inq.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "inquiries_mobile_key") {
			return apperrors.ErrMobileAlreadyExists
		}
		return fmt.Errorf("error updating inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInquiryNotFound
	}
	return nil
}

// Delete removes an inquiry; follow-ups cascade
func (r *InquiryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInquiryNotFound
	}
	return nil
}

// AddFollowUp appends a note to an inquiry
func (r *InquiryRepository) AddFollowUp(ctx context.Context, fu *models.InquiryFollowUp) (int64, error) {
	query := `
		INSERT INTO inquiry_followups (inquiry_id, note, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, fu.InquiryID, fu.Note, fu.CreatedByID).
		Scan(&fu.ID, &fu.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrInquiryNotFound
		}
		return 0, fmt.Errorf("error creating follow-up: %w", err)
	}
	return fu.ID, nil
}

// ListFollowUps returns an inquiry's follow-up notes, oldest first
func (r *InquiryRepository) ListFollowUps(ctx context.Context, inquiryID int64) ([]models.InquiryFollowUp, error) {
	query := `
		SELECT f.id, f.inquiry_id, f.note, f.created_by, f.created_at, u.username
		FROM inquiry_followups f
		LEFT JOIN users u ON u.id = f.created_by
		WHERE f.inquiry_id = $1
		ORDER BY f.created_at, f.id
	`

	rows, err := r.db.Query(ctx, query, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("error listing follow-ups: %w", err)
	}
	defer rows.Close()

	followUps := []models.InquiryFollowUp{}
	for rows.Next() {
		var fu models.InquiryFollowUp
		if err := rows.Scan(&fu.ID, &fu.InquiryID, &fu.Note, &fu.CreatedByID, &fu.CreatedAt, &fu.CreatedByName); err != nil {
			return nil, fmt.Errorf("error scanning follow-up row: %w", err)
		}
		followUps = append(followUps, fu)
	}
	return followUps, rows.Err()
}
