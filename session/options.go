package session

import (
	"log/slog"
	"time"
)

// Defaults for a read-only v2c session.
const (
	DefaultPort      = 161
	DefaultCommunity = "public"
	DefaultTimeout   = 5 * time.Second
	DefaultRetries   = 3
)

// Options contains configuration for a Client.
type Options struct {
	// Target is the SNMP agent host name or address.
	Target string
	// Port is the agent UDP port.
	Port int
	// Community is the read community string.
	Community string
	// Timeout is the per-request timeout.
	Timeout time.Duration
	// Retries is the number of retries on timeout.
	Retries int
	// Logger, when set, receives packet-level debug output.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// NewOptions creates Options with default values.
func NewOptions() *Options {
	return &Options{
		Port:      DefaultPort,
		Community: DefaultCommunity,
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
	}
}

// WithTarget sets the agent address.
func WithTarget(target string) Option {
	return func(o *Options) { o.Target = target }
}

// WithPort sets the agent UDP port.
func WithPort(port int) Option {
	return func(o *Options) { o.Port = port }
}

// WithCommunity sets the read community string.
func WithCommunity(community string) Option {
	return func(o *Options) { o.Community = community }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) { o.Timeout = timeout }
}

// WithRetries sets the retry count.
func WithRetries(retries int) Option {
	return func(o *Options) { o.Retries = retries }
}

// WithLogger enables packet-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}
