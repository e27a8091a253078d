// Package client is the session and notification facade used by the
// command-line UI. It holds the signed-in identity, mirrors it into
// per-profile storage and turns every backend failure into a notification.
package client

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coursedesk/internal/app/models"
)

// DefaultErrorMessage is shown when a failure carries no backend message
const DefaultErrorMessage = "Something went wrong, please try again later!"

// Identity is the signed-in user as held by the facade
type Identity struct {
	ID       string
	Name     string
	Email    string
	Password string
	Token    string
}

// Result is the outcome of a facade call. A failed call has OK false and a
// zero Value; the failure itself has already been logged and notified.
type Result[T any] struct {
	Value T
	OK    bool
}

func success[T any](v T) Result[T] { return Result[T]{Value: v, OK: true} }

// AppService is the facade between the UI, the backend and session storage
type AppService struct {
	api       *APIClient
	storage   SessionStorage
	notifier  Notifier
	navigator Navigator
	logger    zerolog.Logger

	identity *Observable[Identity]
	sidebar  *Observable[bool]
}

// NewAppService creates the facade and restores any persisted session
func NewAppService(
	ctx context.Context,
	api *APIClient,
	storage SessionStorage,
	notifier Notifier,
	navigator Navigator,
	logger zerolog.Logger,
) *AppService {
	s := &AppService{
		api:       api,
		storage:   storage,
		notifier:  notifier,
		navigator: navigator,
		logger:    logger,
		identity:  NewObservable(Identity{}),
		sidebar:   NewObservable(false),
	}
	s.RestoreSession(ctx)
	return s
}

// UserData is the held identity cell
func (s *AppService) UserData() *Observable[Identity] { return s.identity }

// Sidebar is the held sidebar-visibility cell
func (s *AppService) Sidebar() *Observable[bool] { return s.sidebar }

// IsLoggedIn reports whether the held identity has both an email and an id
func (s *AppService) IsLoggedIn() bool {
	id := s.identity.Get()
	return id.Email != "" && id.ID != ""
}

// RestoreSession loads the persisted identity. All three keys must be present,
// otherwise the held identity is left untouched.
func (s *AppService) RestoreSession(ctx context.Context) {
	id := s.read(ctx, KeyUserID)
	email := s.read(ctx, KeyUserEmail)
	name := s.read(ctx, KeyUserName)
	if id == "" || email == "" || name == "" {
		return
	}

	current := s.identity.Get()
	current.ID, current.Email, current.Name = id, email, name
	s.identity.Set(current)
}

// Logout clears the held id and email, removes the persisted session and
// navigates to the root view. The held name is kept.
func (s *AppService) Logout(ctx context.Context) {
	current := s.identity.Get()
	current.ID, current.Email, current.Token = "", "", ""
	s.identity.Set(current)
	s.api.SetToken("")

	for _, key := range []string{KeyUserID, KeyUserEmail, KeyUserName} {
		if err := s.storage.Remove(ctx, key); err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("Failed to remove session key")
		}
	}

	s.navigator.Navigate("/")
}

// FetchUser looks up the user matching the held email and password
func (s *AppService) FetchUser(ctx context.Context) Result[Identity] {
	current := s.identity.Get()
	user, token, err := s.api.FindUser(ctx, current.Email, current.Password)
	if err != nil {
		s.handleError(err)
		return Result[Identity]{}
	}
	return success(Identity{ID: user.ID, Name: user.Name, Email: user.Email, Password: current.Password, Token: token})
}

// RegisterUser creates user on the backend
func (s *AppService) RegisterUser(ctx context.Context, user Identity) Result[Identity] {
	created, token, err := s.api.CreateUser(ctx, User{Name: user.Name, Email: user.Email, Password: user.Password})
	if err != nil {
		s.handleError(err)
		return Result[Identity]{}
	}
	return success(Identity{ID: created.ID, Name: created.Name, Email: created.Email, Password: user.Password, Token: token})
}

// SignIn sets the credentials, fetches the matching user and on success
// replaces the held identity and persists the session keys.
func (s *AppService) SignIn(ctx context.Context, email, password string) Result[Identity] {
	current := s.identity.Get()
	current.Email, current.Password = email, password
	s.identity.Set(current)

	res := s.FetchUser(ctx)
	if !res.OK {
		return res
	}

	s.establish(ctx, res.Value)
	s.Notify("Welcome, "+res.Value.Name+"!", false)
	return res
}

// SignUp registers a user and signs it in
func (s *AppService) SignUp(ctx context.Context, user Identity) Result[Identity] {
	res := s.RegisterUser(ctx, user)
	if !res.OK {
		return res
	}

	s.establish(ctx, res.Value)
	s.Notify("Account created", false)
	return res
}

// Notify shows a transient message
func (s *AppService) Notify(message string, isError bool) {
	style := StyleSuccess
	if isError {
		style = StyleError
	}
	s.notifier.Show(Notification{
		Message:  message,
		Style:    style,
		Duration: NotificationDuration,
		Action:   "X",
		Position: "top-right",
	})
}

// ListCourses lists the courses of the held identity
func (s *AppService) ListCourses(ctx context.Context) Result[[]models.Course] {
	courses, err := s.api.ListCourses(ctx, s.identity.Get().ID)
	if err != nil {
		s.handleError(err)
		return Result[[]models.Course]{}
	}
	return success(courses)
}

// CreateCourse creates a course. An empty owner defaults to the held identity.
func (s *AppService) CreateCourse(ctx context.Context, draft CourseDraft) Result[models.Course] {
	if draft.UserID == "" {
		draft.UserID = s.identity.Get().ID
	}
	course, err := s.api.CreateCourse(ctx, draft)
	if err != nil {
		s.handleError(err)
		return Result[models.Course]{}
	}
	return success(course)
}

// UpdateCourse replaces a course. An empty owner defaults to the held identity.
func (s *AppService) UpdateCourse(ctx context.Context, id string, draft CourseDraft) Result[models.Course] {
	if draft.UserID == "" {
		draft.UserID = s.identity.Get().ID
	}
	course, err := s.api.UpdateCourse(ctx, id, draft)
	if err != nil {
		s.handleError(err)
		return Result[models.Course]{}
	}
	return success(course)
}

// DeleteCourse deletes a course and returns its last state
func (s *AppService) DeleteCourse(ctx context.Context, id string) Result[models.Course] {
	course, err := s.api.DeleteCourse(ctx, id)
	if err != nil {
		s.handleError(err)
		return Result[models.Course]{}
	}
	return success(course)
}

func (s *AppService) establish(ctx context.Context, id Identity) {
	s.identity.Set(id)
	s.api.SetToken(id.Token)

	for key, value := range map[string]string{KeyUserID: id.ID, KeyUserEmail: id.Email, KeyUserName: id.Name} {
		if err := s.storage.Set(ctx, key, value); err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("Failed to persist session key")
		}
	}
}

func (s *AppService) read(ctx context.Context, key string) string {
	value, err := s.storage.Get(ctx, key)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to read session key")
		return ""
	}
	return value
}

func (s *AppService) handleError(err error) {
	s.logger.Error().Err(err).Msg("Request failed")
	s.Notify(errorMessage(err), true)
}
