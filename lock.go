package combolock

// Lock is a combination lock whose credential is fixed at construction.
//
// A Lock starts locked. Its credential cannot be changed; build a new Lock to
// re-key. Not safe for concurrent use.
type Lock struct {
	core lockable
}

// New seals credential with the configured validator (PlainEquality by
// default) and returns a locked Lock.
//
// New fails only when an option is invalid or the validator cannot seal
// credential.
func New(credential string, opts ...Option) (*Lock, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	l := &Lock{}
	l.core.apply(o)
	if err := l.core.key(credential); err != nil {
		return nil, err
	}
	l.core.locked = true

	l.core.metrics.Inc(MetricLockCreated)
	l.core.emit(auditEventLockCreated, true, nil)
	return l, nil
}

// MustNew is like New but panics on error. It is intended for validators that
// cannot fail, such as PlainEquality and HashedEquality.
func MustNew(credential string, opts ...Option) *Lock {
	l, err := New(credential, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Lock closes the lock. Locking a locked lock is a no-op.
func (l *Lock) Lock() {
	l.core.lock()
}

// Unlock opens the lock when candidate matches the stored credential.
// A wrong candidate leaves the lock unchanged and reports nothing.
func (l *Lock) Unlock(candidate string) {
	l.core.unlock(candidate)
}

// Locked reports whether the lock is closed.
func (l *Lock) Locked() bool {
	return l.core.state() != StateUnlocked
}

// State returns the current state.
func (l *Lock) State() State {
	return l.core.state()
}

// ID returns the identifier used in audit events.
func (l *Lock) ID() string {
	return l.core.lockID()
}

// Validator returns the validator the lock was built with.
func (l *Lock) Validator() Validator {
	return l.core.v()
}
