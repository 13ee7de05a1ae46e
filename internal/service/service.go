// Package service holds the circulation core's business rules. Everything
// here is driven through repository interfaces so the rules are testable
// without a database or a UI.
package service

import (
	"github.com/campuslib/circulation-service/internal/notify"
)

// Notifier is the fire-and-forget notification collaborator.
type Notifier interface {
	Notify(e notify.Event)
}

// NopNotifier is used when no broker is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(notify.Event) {}
