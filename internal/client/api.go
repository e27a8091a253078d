package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/yigit/coursedesk/internal/app/models"
)

// HeaderAccessToken carries the token issued by the backend on sign-in and registration
const HeaderAccessToken = "X-Access-Token"

// APIError is a non-2xx response from the backend
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// User is the user record exchanged with the backend
type User struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// CourseDraft is the body of a course create or update
type CourseDraft struct {
	UserID    string   `json:"user_id"`
	Title     string   `json:"title"`
	Teachers  []string `json:"teachers"`
	Classes   []string `json:"classes"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// APIClient talks JSON to the backend
type APIClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewAPIClient creates a client for baseURL. A nil httpClient gets a 10s timeout default.
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SetToken sets the bearer token sent with every request. Empty clears it.
func (c *APIClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// FindUser looks a user up by email and password and returns the issued token
func (c *APIClient) FindUser(ctx context.Context, email, password string) (User, string, error) {
	var user User
	q := url.Values{"email": {email}, "password": {password}}
	header, err := c.do(ctx, http.MethodGet, "/users", q, nil, &user)
	if err != nil {
		return User{}, "", err
	}
	return user, header.Get(HeaderAccessToken), nil
}

// CreateUser registers a user and returns the issued token
func (c *APIClient) CreateUser(ctx context.Context, u User) (User, string, error) {
	var user User
	header, err := c.do(ctx, http.MethodPost, "/users", nil, u, &user)
	if err != nil {
		return User{}, "", err
	}
	return user, header.Get(HeaderAccessToken), nil
}

// ListCourses returns the courses owned by userID
func (c *APIClient) ListCourses(ctx context.Context, userID string) ([]models.Course, error) {
	courses := []models.Course{}
	_, err := c.do(ctx, http.MethodGet, "/courses", url.Values{"user_id": {userID}}, nil, &courses)
	return courses, err
}

// CreateCourse creates a course
func (c *APIClient) CreateCourse(ctx context.Context, draft CourseDraft) (models.Course, error) {
	var course models.Course
	_, err := c.do(ctx, http.MethodPost, "/courses", nil, draft, &course)
	return course, err
}

// UpdateCourse replaces course id with draft
func (c *APIClient) UpdateCourse(ctx context.Context, id string, draft CourseDraft) (models.Course, error) {
	var course models.Course
	_, err := c.do(ctx, http.MethodPut, "/courses/"+url.PathEscape(id), nil, draft, &course)
	return course, err
}

// DeleteCourse deletes course id and returns its last state
func (c *APIClient) DeleteCourse(ctx context.Context, id string) (models.Course, error) {
	var course models.Course
	_, err := c.do(ctx, http.MethodDelete, "/courses/"+url.PathEscape(id), nil, nil, &course)
	return course, err
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return resp.Header, apiErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode response data: %w", err)
		}
	}
	return resp.Header, nil
}

// errorMessage extracts the user-facing message of an API failure
func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return DefaultErrorMessage
}
