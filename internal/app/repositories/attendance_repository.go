package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/dberrors"
)

// AttendanceFilter narrows attendance list queries. BatchTrainerID is
// the trainer scope: only records whose batch is assigned to that
// trainer are visible.
type AttendanceFilter struct {
	BatchTrainerID *int64
	BatchID        *int64
	StudentID      *int64
	Date           *time.Time
}

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const attendanceSelect = `
	a.id, a.batch_id, a.student_id, a.date, a.lecture_time, a.status,
	a.topic_taught, a.remarks, a.trainer_id,
	i.name,
	u.username,
	b.batch_name
`

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var a models.Attendance
	err := row.Scan(
		&a.ID,
		&a.BatchID,
		&a.StudentID,
		&a.Date,
		&a.LectureTime,
		&a.Status,
		&a.TopicTaught,
		&a.Remarks,
		&a.TrainerID,
		&a.StudentName,
		&a.TrainerName,
		&a.BatchName,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(attendanceSelect).
		From("attendance a").
		LeftJoin("students s ON s.id = a.student_id").
		LeftJoin("inquiries i ON i.id = s.inquiry_id").
		LeftJoin("users u ON u.id = a.trainer_id").
		LeftJoin("batches b ON b.id = a.batch_id")
}

// Create inserts a new attendance record
func (r *AttendanceRepository) Create(ctx context.Context, a *models.Attendance) (int64, error) {
	query := `
		INSERT INTO attendance (
			batch_id, student_id, date, lecture_time, status,
			topic_taught, remarks, trainer_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		a.BatchID,
		a.StudentID,
		a.Date,
		a.LectureTime,
		a.Status,
		a.TopicTaught,
		a.Remarks,
		a.TrainerID,
	).Scan(&a.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "attendance_student_id_date_key") {
			return 0, apperrors.ErrAttendanceDuplicate
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrStudentNotFound
		}
		return 0, fmt.Errorf("error creating attendance: %w", err)
	}
	return a.ID, nil
}

// GetByID retrieves one attendance record. A non-nil batchTrainerID
// restricts visibility to records of that trainer's batches.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64, batchTrainerID *int64) (*models.Attendance, error) {
	builder := r.baseSelect().Where(squirrel.Eq{"a.id": id})
	if batchTrainerID != nil {
		builder = builder.Where(squirrel.Eq{"b.trainer_id": *batchTrainerID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get attendance query: %w", err)
	}

	a, err := scanAttendance(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	return a, nil
}

// List retrieves attendance records matching the filter, newest date first
func (r *AttendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]models.Attendance, error) {
	builder := r.baseSelect().OrderBy("a.date DESC", "a.id DESC")

	if filter.BatchTrainerID != nil {
		builder = builder.Where(squirrel.Eq{"b.trainer_id": *filter.BatchTrainerID})
	}
	if filter.BatchID != nil {
		builder = builder.Where(squirrel.Eq{"a.batch_id": *filter.BatchID})
	}
	if filter.StudentID != nil {
		builder = builder.Where(squirrel.Eq{"a.student_id": *filter.StudentID})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"a.date": *filter.Date})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	records := []models.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		records = append(records, *a)
	}
	return records, rows.Err()
}

// Update rewrites the mutable columns of an attendance record
func (r *AttendanceRepository) Update(ctx context.Context, a *models.Attendance) error {
	query := `
		UPDATE attendance
		SET date = $1, lecture_time = $2, status = $3, topic_taught = $4, remarks = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		a.Date,
		a.LectureTime,
		a.Status,
		a.TopicTaught,
		a.Remarks,
		a.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "attendance_student_id_date_key") {
			return apperrors.ErrAttendanceDuplicate
		}
		return fmt.Errorf("error updating attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}

// Delete removes an attendance record
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}
