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

// StudentFilter narrows student list queries.
type StudentFilter struct {
	BatchID *int64
	Mobile  string
}

// StudentRepository handles database operations for enrolled students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentSelect = `
	s.id, s.inquiry_id, s.mobile, s.email, s.course, s.total_fees,
	s.batch_id, s.enrollment_date, s.status,
	b.batch_name
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var st models.Student
	err := row.Scan(
		&st.ID,
		&st.InquiryID,
		&st.Mobile,
		&st.Email,
		&st.Course,
		&st.TotalFees,
		&st.BatchID,
		&st.EnrollmentDate,
		&st.Status,
		&st.BatchName,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, st *models.Student) (int64, error) {
	query := `
		INSERT INTO students (
			inquiry_id, mobile, email, course, total_fees,
			batch_id, enrollment_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		st.InquiryID,
		st.Mobile,
		st.Email,
		st.Course,
		st.TotalFees,
		st.BatchID,
		st.EnrollmentDate,
		st.Status,
	).Scan(&st.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_inquiry_id_key") {
			return 0, apperrors.ErrInquiryAlreadyAdmitted
		}
		if dberrors.IsDuplicateConstraintError(err, "students_mobile_key") {
			return 0, apperrors.ErrStudentMobileExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrInquiryNotFound
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return st.ID, nil
}

// GetByID retrieves one student with its inquiry details and fee history
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT ` + studentSelect + `
		FROM students s
		LEFT JOIN batches b ON b.id = s.batch_id
		WHERE s.id = $1
	`

	st, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return st, nil
}

// List retrieves students matching the filter, latest enrollments first
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter) ([]models.Student, error) {
	builder := r.sb.Select(studentSelect).
		From("students s").
		LeftJoin("batches b ON b.id = s.batch_id").
		OrderBy("s.enrollment_date DESC", "s.id DESC")

	if filter.BatchID != nil {
		builder = builder.Where(squirrel.Eq{"s.batch_id": *filter.BatchID})
	}
	if filter.Mobile != "" {
		builder = builder.Where(squirrel.Eq{"s.mobile": filter.Mobile})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *st)
	}
	return students, rows.Err()
}

// Update rewrites all mutable columns of a student
func (r *StudentRepository) Update(ctx context.Context, st *models.Student) error {
	query := `
		UPDATE students
		SET mobile = $1, email = $2, course = $3, total_fees = $4,
		    batch_id = $5, enrollment_date = $6, status = $7
		WHERE id = $8
	`

	tag, err := r.db.Exec(ctx, query,
		st.Mobile,
		st.Email,
		st.Course,
		st.TotalFees,
		st.BatchID,
		st.EnrollmentDate,
		st.Status,
		st.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_mobile_key") {
			return apperrors.ErrStudentMobileExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBatchNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student; fee rows cascade
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
