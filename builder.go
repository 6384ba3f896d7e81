package combolock

import "errors"

// Builder assembles a [Locksmith] from a Config and optional overrides.
//
// Builder is single-use: Build may be called once.
type Builder struct {
	config    Config
	validator Validator
	auditSink AuditSink

	built bool
}

// NewBuilder returns a builder seeded with DefaultConfig.
func NewBuilder() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the builder configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithValidator overrides the validator named in the configuration.
func (b *Builder) WithValidator(v Validator) *Builder {
	b.validator = v
	return b
}

// WithAuditSink sets the sink audit events are delivered to. It takes effect
// only when Config.Audit.Enabled is true.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// Build validates the configuration and returns a Locksmith.
func (b *Builder) Build() (*Locksmith, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	v := b.validator
	if v == nil {
		var err error
		v, err = b.config.NewValidator()
		if err != nil {
			return nil, err
		}
	}

	b.built = true
	return &Locksmith{
		config:    b.config,
		validator: v,
		metrics:   NewMetrics(b.config.Metrics),
		audit:     NewAuditDispatcher(b.config.Audit, b.auditSink),
	}, nil
}

// Locksmith makes locks that share one validator, one metrics registry, and
// one audit dispatcher.
//
// Locksmith methods are safe for concurrent use; the locks it returns are not.
type Locksmith struct {
	config    Config
	validator Validator
	metrics   *Metrics
	audit     *AuditDispatcher
}

func (s *Locksmith) options(extra []Option) []Option {
	opts := make([]Option, 0, 3+len(extra))
	opts = append(opts,
		WithValidator(s.validator),
		WithMetrics(s.metrics),
		WithAuditDispatcher(s.audit),
	)
	return append(opts, extra...)
}

// NewLock returns a locked Lock keyed with credential.
func (s *Locksmith) NewLock(credential string, opts ...Option) (*Lock, error) {
	return New(credential, s.options(opts)...)
}

// NewMutable returns an unset MutableLock.
func (s *Locksmith) NewMutable(opts ...Option) (*MutableLock, error) {
	return NewMutable(s.options(opts)...)
}

// Validator returns the shared validator.
func (s *Locksmith) Validator() Validator {
	return s.validator
}

// Config returns the configuration the Locksmith was built from.
func (s *Locksmith) Config() Config {
	return s.config
}

// Metrics returns the shared metrics registry.
func (s *Locksmith) Metrics() *Metrics {
	return s.metrics
}

// MetricsSnapshot returns a copy of the shared metrics.
func (s *Locksmith) MetricsSnapshot() MetricsSnapshot {
	return s.metrics.Snapshot()
}

// AuditDropped returns the number of audit events dropped under backpressure.
func (s *Locksmith) AuditDropped() uint64 {
	return s.audit.Dropped()
}

// Close flushes and stops the audit dispatcher.
func (s *Locksmith) Close() {
	s.audit.Close()
}
