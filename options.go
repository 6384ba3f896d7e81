package combolock

// Option configures a lock at construction.
type Option func(*options)

type options struct {
	id           string
	validator    Validator
	validatorSet bool
	metrics      *Metrics
	audit        AuditSink
}

// WithValidator sets the credential validator. Passing nil makes construction
// fail with [ErrNilValidator].
func WithValidator(v Validator) Option {
	return func(o *options) {
		o.validator = v
		o.validatorSet = true
	}
}

// WithMetrics attaches a shared metrics registry.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithAuditSink routes audit events to sink synchronously.
func WithAuditSink(sink AuditSink) Option {
	return func(o *options) {
		o.audit = sink
	}
}

// WithAuditDispatcher routes audit events through an asynchronous dispatcher.
func WithAuditDispatcher(d *AuditDispatcher) Option {
	return func(o *options) {
		if d == nil {
			o.audit = nil
			return
		}
		o.audit = d
	}
}

// WithID overrides the generated lock identifier used in audit events.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

func buildOptions(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.validatorSet && o.validator == nil {
		return o, ErrNilValidator
	}
	if o.validator == nil {
		o.validator = PlainEquality{}
	}
	return o, nil
}
