package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/app/repositories"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
)

// CourseService defines the interface for course operations.
// Every operation performs one existence-check read followed by at most one write.
type CourseService interface {
	Create(ctx context.Context, input models.CourseInput) (*models.Course, error)
	ListByOwner(ctx context.Context, userID string) ([]*models.Course, error)
	Update(ctx context.Context, id string, input models.CourseInput) (*models.Course, error)
	Delete(ctx context.Context, id string) (*models.Course, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
	logger     zerolog.Logger
	now        func() time.Time
	newID      func() string
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Create persists a new course for an existing owner
func (s *courseServiceImpl) Create(ctx context.Context, input models.CourseInput) (*models.Course, error) {
	if err := authorizeOwner(ctx, input.UserID); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("error checking course owner: %w", err)
	}
	if !exists {
		return nil, apperrors.NewReferenceError("owner not found")
	}

	if err := validateSequences(input); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:        s.newID(),
		UserID:    input.UserID,
		Title:     input.Title,
		Teachers:  input.Teachers,
		Classes:   input.Classes,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			// owner removed between the check and the insert
			return nil, apperrors.NewReferenceError("owner not found")
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Str("courseID", course.ID).Str("userID", course.UserID).Msg("Course created")
	return course, nil
}

// ListByOwner returns every course owned by userID. An owner with no courses,
// known or not, yields an empty slice.
func (s *courseServiceImpl) ListByOwner(ctx context.Context, userID string) ([]*models.Course, error) {
	if err := authorizeOwner(ctx, userID); err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}

// Update replaces every caller-supplied field of an existing course.
// No merge with the stored record takes place: omitted scalar fields are
// overwritten with their zero values. The owner is fixed at creation, so
// user_id must name the current owner. The returned course is the locally
// built replacement.
func (s *courseServiceImpl) Update(ctx context.Context, id string, input models.CourseInput) (*models.Course, error) {
	existing, err := s.loadCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(ctx, existing.UserID); err != nil {
		return nil, err
	}
	if input.UserID != existing.UserID {
		return nil, apperrors.NewFieldValidationError("user_id", "course owner cannot be changed")
	}
	if err := validateSequences(input); err != nil {
		return nil, err
	}

	replacement := &models.Course{
		ID:        id,
		UserID:    existing.UserID,
		Title:     input.Title,
		Teachers:  input.Teachers,
		Classes:   input.Classes,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: s.now().UTC(),
	}

	affected, err := s.courseRepo.Update(ctx, replacement)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			// owner removed after the course was loaded
			return nil, apperrors.NewReferenceError("owner not found")
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewOperationError("update failed")
	}

	s.logger.Info().Str("courseID", id).Msg("Course updated")
	return replacement, nil
}

// Delete permanently removes a course and returns its pre-delete snapshot
func (s *courseServiceImpl) Delete(ctx context.Context, id string) (*models.Course, error) {
	snapshot, err := s.loadCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(ctx, snapshot.UserID); err != nil {
		return nil, err
	}

	affected, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting course: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewOperationError("delete failed")
	}

	s.logger.Info().Str("courseID", id).Msg("Course deleted")
	return snapshot, nil
}

func (s *courseServiceImpl) loadCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewReferenceError("course not found")
		}
		return nil, fmt.Errorf("error finding course: %w", err)
	}
	return course, nil
}

func validateSequences(input models.CourseInput) error {
	if input.Teachers == nil {
		return apperrors.NewFieldValidationError("teachers", "teachers must be an array of strings")
	}
	if input.Classes == nil {
		return apperrors.NewFieldValidationError("classes", "classes must be an array of strings")
	}
	return nil
}
