package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sandesh/institutecrm/internal/app/models"
)

// DashboardRepository serves the read-only aggregate queries behind the
// dashboard. Every numeric result is zero when the underlying set is
// empty, never null.
type DashboardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CountInquiries counts inquiries, optionally scoped to a creator and
// to those created on or after `since`.
func (r *DashboardRepository) CountInquiries(ctx context.Context, createdBy *int64, since *time.Time) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("inquiries")
	if createdBy != nil {
		builder = builder.Where(squirrel.Eq{"created_by": *createdBy})
	}
	if since != nil {
		builder = builder.Where(squirrel.GtOrEq{"created_at": *since})
	}
	return r.count(ctx, builder, "inquiries")
}

// CountStudents counts all enrolled students
func (r *DashboardRepository) CountStudents(ctx context.Context) (int64, error) {
	return r.count(ctx, r.sb.Select("COUNT(*)").From("students"), "students")
}

// CountStudentsEnrolledOn counts students whose enrollment date equals `on`
func (r *DashboardRepository) CountStudentsEnrolledOn(ctx context.Context, on time.Time) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("students").
		Where(squirrel.Eq{"enrollment_date": on})
	return r.count(ctx, builder, "students enrolled on date")
}

// SumFees sums all fee amounts; a non-nil `on` restricts to that
// collection date. Returns zero for an empty set.
func (r *DashboardRepository) SumFees(ctx context.Context, on *time.Time) (decimal.Decimal, error) {
	builder := r.sb.Select("COALESCE(SUM(amount), 0)").From("fees")
	if on != nil {
		builder = builder.Where(squirrel.Eq{"date_collected": *on})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build sum fees query: %w", err)
	}

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing fees: %w", err)
	}
	return total, nil
}

// CountOutreach counts outreach events, optionally scoped to an officer
// and to a single date.
func (r *DashboardRepository) CountOutreach(ctx context.Context, officerID *int64, on *time.Time) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("placement_outreach")
	if officerID != nil {
		builder = builder.Where(squirrel.Eq{"officer_id": *officerID})
	}
	if on != nil {
		builder = builder.Where(squirrel.Eq{"date": *on})
	}
	return r.count(ctx, builder, "outreach")
}

// RecentStudents returns the latest enrollments, newest first
func (r *DashboardRepository) RecentStudents(ctx context.Context, limit uint64) ([]models.Student, error) {
	sql, args, err := r.sb.Select(studentSelect).
		From("students s").
		LeftJoin("batches b ON b.id = s.batch_id").
		OrderBy("s.enrollment_date DESC", "s.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing recent students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning recent student row: %w", err)
		}
		students = append(students, *st)
	}
	return students, rows.Err()
}

// RecentFees returns the latest fee collections, newest first
func (r *DashboardRepository) RecentFees(ctx context.Context, limit uint64) ([]models.Fee, error) {
	sql, args, err := r.sb.Select(feeSelect).
		From(feeFrom).
		LeftJoin("users u ON u.id = f.collected_by").
		LeftJoin("students s ON s.id = f.student_id").
		LeftJoin("inquiries i ON i.id = s.inquiry_id").
		OrderBy("f.date_collected DESC", "f.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent fees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing recent fees: %w", err)
	}
	defer rows.Close()

	fees := []models.Fee{}
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning recent fee row: %w", err)
		}
		fees = append(fees, *fee)
	}
	return fees, rows.Err()
}

func (r *DashboardRepository) count(ctx context.Context, builder squirrel.SelectBuilder, what string) (int64, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count %s query: %w", what, err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", what, err)
	}
	return n, nil
}
