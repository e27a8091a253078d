package client

import (
	"fmt"
	"io"
	"time"
)

// NotificationStyle selects how a notification is rendered
type NotificationStyle string

const (
	StyleSuccess NotificationStyle = "msg-success"
	StyleError   NotificationStyle = "msg-error"
)

// NotificationDuration is how long a notification stays visible
const NotificationDuration = 3 * time.Second

// Notification is a transient message shown to the user
type Notification struct {
	Message  string
	Style    NotificationStyle
	Duration time.Duration
	Action   string // dismiss label
	Position string
}

// Notifier renders notifications
type Notifier interface {
	Show(n Notification)
}

// Navigator moves the UI to another view
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// WriterNotifier prints notifications as single lines, e.g. to a terminal
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a WriterNotifier writing to w
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Show(note Notification) {
	marker := "✔"
	if note.Style == StyleError {
		marker = "✖"
	}
	fmt.Fprintf(n.w, "%s %s\n", marker, note.Message)
}
