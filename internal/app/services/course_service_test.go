package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/app/models/dto"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
	"github.com/yigit/coursedesk/internal/pkg/auth"
)

func newTestCourseService(users ...*models.User) (*courseServiceImpl, *fakeCourseRepo, *fakeUserRepo) {
	userRepo := newFakeUserRepo(users...)
	courseRepo := newFakeCourseRepo(userRepo)
	seq := 0
	svc := NewCourseService(courseRepo, userRepo, zerolog.Nop()).(*courseServiceImpl)
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("course-%d", seq)
	}
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc, courseRepo, userRepo
}

func algebra(userID string) models.CourseInput {
	return models.CourseInput{
		UserID:    userID,
		Title:     "Algebra",
		Teachers:  []string{"A"},
		Classes:   []string{"101"},
		StartTime: "09:00",
		EndTime:   "10:00",
	}
}

func TestCreateCourse(t *testing.T) {
	svc, repo, _ := newTestCourseService(&models.User{ID: "u1"})
	ctx := context.Background()

	course, err := svc.Create(ctx, algebra("u1"))
	require.NoError(t, err)
	assert.Equal(t, "course-1", course.ID)
	assert.Equal(t, "u1", course.UserID)
	assert.Equal(t, []string{"A"}, course.Teachers)
	assert.Equal(t, []string{"101"}, course.Classes)

	listed, err := svc.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, course.ID, listed[0].ID)

	others, err := svc.ListByOwner(ctx, "u2")
	require.NoError(t, err)
	assert.NotNil(t, others)
	assert.Empty(t, others)
	assert.Equal(t, 1, repo.writes)
}

func TestCreateCourseUnknownOwner(t *testing.T) {
	svc, repo, _ := newTestCourseService()

	_, err := svc.Create(context.Background(), algebra("ghost"))
	require.ErrorIs(t, err, apperrors.ErrReference)
	assert.Equal(t, "owner not found", apperrors.Message(err))
	assert.Zero(t, repo.writes)
	assert.Empty(t, repo.courses)
}

func TestCreateCourseRejectsNonSequence(t *testing.T) {
	tests := []struct {
		name  string
		input func(models.CourseInput) models.CourseInput
	}{
		{"teachers", func(in models.CourseInput) models.CourseInput { in.Teachers = nil; return in }},
		{"classes", func(in models.CourseInput) models.CourseInput { in.Classes = nil; return in }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, _ := newTestCourseService(&models.User{ID: "u1"})

			_, err := svc.Create(context.Background(), tc.input(algebra("u1")))
			require.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, apperrors.Message(err), tc.name)
			assert.Zero(t, repo.writes)
		})
	}
}

func TestCreateCourseAcceptsEmptySequences(t *testing.T) {
	svc, _, _ := newTestCourseService(&models.User{ID: "u1"})
	in := algebra("u1")
	in.Teachers, in.Classes = []string{}, []string{}

	course, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, course.Teachers)
}

func TestCreateCourseStoreError(t *testing.T) {
	svc, _, users := newTestCourseService(&models.User{ID: "u1"})
	users.err = errStoreDown

	_, err := svc.Create(context.Background(), algebra("u1"))
	require.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, apperrors.ErrReference)
}

func TestUpdateCourseFullOverwrite(t *testing.T) {
	svc, repo, _ := newTestCourseService(&models.User{ID: "u1"})
	ctx := context.Background()
	created, err := svc.Create(ctx, algebra("u1"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, models.CourseInput{
		UserID: "u1", Title: "Algebra II", Teachers: []string{}, Classes: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Algebra II", updated.Title)
	assert.Empty(t, updated.StartTime)
	assert.Equal(t, []string{}, updated.Teachers)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), updated.UpdatedAt)

	stored := repo.courses[created.ID]
	assert.Equal(t, "Algebra II", stored.Title)
	assert.Empty(t, stored.EndTime)
}

func TestUpdateCourseMissing(t *testing.T) {
	svc, repo, _ := newTestCourseService(&models.User{ID: "u1"})

	_, err := svc.Update(context.Background(), "missing", algebra("u1"))
	require.ErrorIs(t, err, apperrors.ErrReference)
	assert.Equal(t, "course not found", apperrors.Message(err))
	assert.Zero(t, repo.writes)
}

func TestUpdateCourseNoEffect(t *testing.T) {
	svc, repo, _ := newTestCourseService(&models.User{ID: "u1"})
	ctx := context.Background()
	created, err := svc.Create(ctx, algebra("u1"))
	require.NoError(t, err)

	repo.updateAffected = int64Ptr(0)
	_, err = svc.Update(ctx, created.ID, algebra("u1"))
	require.ErrorIs(t, err, apperrors.ErrOperation)
	assert.Equal(t, "update failed", apperrors.Message(err))
}

func TestUpdateCourseOwnerRemoved(t *testing.T) {
	svc, repo, _ := newTestCourseService(&models.User{ID: "u1"})
	ctx := context.Background()
	created, err := svc.Create(ctx, algebra("u1"))
	require.NoError(t, err)

	repo.updateErr = apperrors.ErrUserNotFound
	_, err = svc.Update(ctx, created.ID, algebra("u1"))
	require.ErrorIs(t, err, apperrors.ErrReference)
	assert.Equal(t, "owner not found", apperrors.Message(err))
}

func TestUpdateCourseRejectsNonSequence(t *testing.T) {
	svc, repo, _ := newTestCourseService(&models.User{ID: "u1"})
	ctx := context.Background()
	created, err := svc.Create(ctx, algebra("u1"))
	require.NoError(t, err)

	var req dto.CourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":"u1","title":"Algebra II","teachers":"Alice","classes":42}`), &req))

	_, err = svc.Update(ctx, created.ID, req.ToInput())
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "teachers", apperrors.DetailsOf(err)["field"])
	assert.Equal(t, 1, repo.writes)

	stored := repo.courses[created.ID]
	assert.Equal(t, "Algebra", stored.Title)
	assert.Equal(t, []string{"A"}, stored.Teachers)
	assert.Equal(t, []string{"101"}, stored.Classes)

	in := algebra("u1")
	in.Classes = nil
	_, err = svc.Update(ctx, created.ID, in)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, apperrors.Message(err), "classes")
	assert.Equal(t, 1, repo.writes)
}

func TestDeleteCourse(t *testing.T) {
	svc, repo, _ := newTestCourseService(&models.User{ID: "u1"})
	ctx := context.Background()
	created, err := svc.Create(ctx, algebra("u1"))
	require.NoError(t, err)

	snapshot, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, snapshot.ID)
	assert.Equal(t, "Algebra", snapshot.Title)

	_, err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, apperrors.ErrReference)
	assert.Equal(t, "course not found", apperrors.Message(err))

	_, err = svc.Update(ctx, created.ID, algebra("u1"))
	require.ErrorIs(t, err, apperrors.ErrReference)
	assert.Equal(t, 2, repo.writes)
}

func TestDeleteCourseNoEffect(t *testing.T) {
	svc, repo, _ := newTestCourseService(&models.User{ID: "u1"})
	ctx := context.Background()
	created, err := svc.Create(ctx, algebra("u1"))
	require.NoError(t, err)

	repo.deleteAffected = int64Ptr(0)
	_, err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, apperrors.ErrOperation)
	assert.Equal(t, "delete failed", apperrors.Message(err))
}

func TestCourseOwnershipWithPrincipal(t *testing.T) {
	svc, repo, _ := newTestCourseService(&models.User{ID: "u1"}, &models.User{ID: "u2"})
	created, err := svc.Create(context.Background(), algebra("u1"))
	require.NoError(t, err)

	intruder := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "u2"})

	_, err = svc.Create(intruder, algebra("u1"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.ListByOwner(intruder, "u1")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.Update(intruder, created.ID, algebra("u2"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.Delete(intruder, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Contains(t, repo.courses, created.ID)

	owner := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "u1"})
	_, err = svc.Delete(owner, created.ID)
	assert.NoError(t, err)
}

func TestUpdateCourseKeepsOwner(t *testing.T) {
	svc, repo, _ := newTestCourseService(&models.User{ID: "u1"}, &models.User{ID: "u2"})
	created, err := svc.Create(context.Background(), algebra("u1"))
	require.NoError(t, err)

	owner := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "u1"})
	for _, ctx := range []context.Context{owner, context.Background()} {
		_, err = svc.Update(ctx, created.ID, algebra("u2"))
		require.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, "user_id", apperrors.DetailsOf(err)["field"])
	}

	assert.Equal(t, "u1", repo.courses[created.ID].UserID)
	moved, err := svc.ListByOwner(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, moved)
	assert.Equal(t, 1, repo.writes)

	updated, err := svc.Update(owner, created.ID, algebra("u1"))
	require.NoError(t, err)
	assert.Equal(t, "u1", updated.UserID)
}

func TestExistenceCheckPrecedesSingleWrite(t *testing.T) {
	svc, repo, users := newTestCourseService(&models.User{ID: "u1"})
	ctx := context.Background()

	created, err := svc.Create(ctx, algebra("u1"))
	require.NoError(t, err)
	assert.Equal(t, 1, users.reads)
	assert.Equal(t, 1, repo.writes)

	repo.reads, repo.writes = 0, 0
	_, err = svc.Update(ctx, created.ID, algebra("u1"))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.reads)
	assert.Equal(t, 1, repo.writes)
}
