package circuitbreaker

import "time"

type Config struct {
	// Name identifies the breaker in logs.
	Name    string
	Enabled bool

	// MaxRequests is the number of probes let through while half-open. Zero means one.
	MaxRequests uint
	// Interval clears the failure counts while closed. Zero never clears them.
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration
	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold uint

	// IsSuccessful decides whether an error counts against the breaker.
	// Nil counts every non-nil error except context cancellation.
	IsSuccessful func(err error) bool
	// OnStateChange is notified on every transition, e.g. for logging.
	OnStateChange func(name string, from, to State)
}
