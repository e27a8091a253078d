package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
	"github.com/yigit/coursedesk/internal/pkg/dberrors"
	"github.com/yigit/coursedesk/internal/pkg/logger"
)

var courseColumns = []string{"id", "user_id", "title", "teachers", "classes", "start_time", "end_time", "created_at", "updated_at"}

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// CourseRepository handles course database operations.
// teachers and classes are encoded with models.EncodeList on every write
// and decoded with models.DecodeList on every read.
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a course and fills in created_at/updated_at
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	teachers, classes, err := encodeCourseLists(course)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("courses").
		Columns("id", "user_id", "title", "teachers", "classes", "start_time", "end_time").
		Values(course.ID, course.UserID, course.Title, teachers, classes, course.StartTime, course.EndTime).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.CreatedAt, &course.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", course.UserID).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// ListByUserID retrieves every course owned by userID in store order
func (r *CourseRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Str("userID", userID).Msg("Error scanning course row during list")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Update overwrites every mutable column of the course and returns the number of affected rows
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) (int64, error) {
	teachers, classes, err := encodeCourseLists(course)
	if err != nil {
		return 0, err
	}

	sql, args, err := r.sb.Update("courses").
		Set("user_id", course.UserID).
		Set("title", course.Title).
		Set("teachers", teachers).
		Set("classes", classes).
		Set("start_time", course.StartTime).
		Set("end_time", course.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return 0, fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("courseID", course.ID).Msg("Error executing update course query")
		return 0, fmt.Errorf("error updating course: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Delete removes a course permanently and returns the number of affected rows
func (r *CourseRepository) Delete(ctx context.Context, id string) (int64, error) {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return 0, fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id).Msg("Error executing delete course query")
		return 0, fmt.Errorf("error deleting course: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

func encodeCourseLists(course *models.Course) (string, string, error) {
	teachers, err := models.EncodeList(course.Teachers)
	if err != nil {
		return "", "", fmt.Errorf("teachers: %w", err)
	}
	classes, err := models.EncodeList(course.Classes)
	if err != nil {
		return "", "", fmt.Errorf("classes: %w", err)
	}
	return teachers, classes, nil
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var (
		course            models.Course
		teachers, classes string
	)

	err := row.Scan(&course.ID, &course.UserID, &course.Title, &teachers, &classes,
		&course.StartTime, &course.EndTime, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if course.Teachers, err = models.DecodeList(teachers); err != nil {
		return nil, err
	}
	if course.Classes, err = models.DecodeList(classes); err != nil {
		return nil, err
	}

	return &course, nil
}
