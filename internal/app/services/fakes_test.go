package services

import (
	"context"
	"errors"

	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	err    error
	reads  int
	writes int
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.writes++
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.reads++
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.reads++
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) Exists(_ context.Context, id string) (bool, error) {
	r.reads++
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.users[id]
	return ok, nil
}

// fakeCourseRepo keeps insertion order so list assertions are stable.
type fakeCourseRepo struct {
	users   *fakeUserRepo
	order   []string
	courses map[string]*models.Course

	// forced results
	updateAffected *int64
	deleteAffected *int64
	updateErr      error

	reads  int
	writes int
}

func newFakeCourseRepo(users *fakeUserRepo) *fakeCourseRepo {
	return &fakeCourseRepo{users: users, courses: map[string]*models.Course{}}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	r.writes++
	if _, ok := r.users.users[course.UserID]; !ok {
		return apperrors.ErrUserNotFound
	}
	cp := *course
	r.courses[course.ID] = &cp
	r.order = append(r.order, course.ID)
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id string) (*models.Course, error) {
	r.reads++
	if c, ok := r.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *fakeCourseRepo) ListByUserID(_ context.Context, userID string) ([]*models.Course, error) {
	r.reads++
	var out []*models.Course
	for _, id := range r.order {
		if c, ok := r.courses[id]; ok && c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) (int64, error) {
	r.writes++
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	if r.updateAffected != nil {
		return *r.updateAffected, nil
	}
	if _, ok := r.users.users[course.UserID]; !ok {
		return 0, apperrors.ErrUserNotFound
	}
	if _, ok := r.courses[course.ID]; !ok {
		return 0, nil
	}
	cp := *course
	r.courses[course.ID] = &cp
	return 1, nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id string) (int64, error) {
	r.writes++
	if r.deleteAffected != nil {
		return *r.deleteAffected, nil
	}
	if _, ok := r.courses[id]; !ok {
		return 0, nil
	}
	delete(r.courses, id)
	return 1, nil
}

var errStoreDown = errors.New("store unavailable")

func int64Ptr(v int64) *int64 { return &v }
