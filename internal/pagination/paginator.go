// internal/pagination/paginator.go
package pagination

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// DefaultSize is the page size used when neither the caller nor any
// configuration provides one.
const DefaultSize = 20

// Config is the pagination configuration of a paginator or resource.
type Config struct {
	Size int `json:"size"`
}

// Option overrides part of a Config. Keys not touched by an option keep
// their current value.
type Option func(*Config)

// WithSize sets the default page size. Non-positive sizes are ignored.
func WithSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.Size = size
		}
	}
}

func (c Config) merge(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// Paginator holds the process-wide pagination defaults and attaches
// pagination to resources. Configure is meant to be called during setup.
type Paginator struct {
	mu     sync.RWMutex
	config Config
}

// New returns a Paginator initialised with DefaultSize.
func New(opts ...Option) *Paginator {
	return &Paginator{config: Config{Size: DefaultSize}.merge(opts...)}
}

// Configure merges opts into the current configuration. Calling it without
// options leaves the configuration untouched.
func (p *Paginator) Configure(opts ...Option) {
	if len(opts) == 0 {
		return
	}
	p.mu.Lock()
	p.config = p.config.merge(opts...)
	cfg := p.config
	p.mu.Unlock()

	log.Debug().Int("size", cfg.Size).Msg("pagination configured")
}

// Options returns a copy of the current configuration.
func (p *Paginator) Options() Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.config
}

// Attach makes model paginatable. The returned Resource keeps a snapshot of
// the current configuration merged with opts; later Configure calls do not
// change it.
func (p *Paginator) Attach(model any, opts ...Option) *Resource {
	cfg := p.Options().merge(opts...)
	name := modelName(model)
	log.Debug().Str("model", name).Int("size", cfg.Size).Msg("pagination attached")
	return &Resource{name: name, model: model, config: cfg}
}

var std = New()

// Default returns the process-wide Paginator.
func Default() *Paginator { return std }

// Configure updates the process-wide configuration.
func Configure(opts ...Option) { std.Configure(opts...) }

// Options returns the process-wide configuration.
func Options() Config { return std.Options() }

// Attach makes model paginatable using the process-wide configuration.
func Attach(model any, opts ...Option) *Resource { return std.Attach(model, opts...) }
