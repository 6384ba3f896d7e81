package combolock

// MutableLock is a combination lock whose credential is assigned after
// construction and may be changed while the lock is open.
//
// The zero value is an unset lock using PlainEquality. An unset lock reports
// locked, ignores Lock and Unlock, and accepts SetPassword. Setting a password
// does not close the lock; call Lock for that.
//
// Not safe for concurrent use.
type MutableLock struct {
	core lockable
}

// NewMutable returns an unset MutableLock configured by opts.
func NewMutable(opts ...Option) (*MutableLock, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	l := &MutableLock{}
	l.core.apply(o)

	l.core.metrics.Inc(MetricLockCreated)
	l.core.emit(auditEventLockCreated, true, nil)
	return l, nil
}

// SetPassword stores credential unless the lock is currently locked.
// While locked, or when the validator cannot seal credential, the call is
// ignored and the previous credential stays in effect.
func (l *MutableLock) SetPassword(credential string) {
	if l.core.state() == StateLocked {
		l.core.metrics.Inc(MetricPasswordSetIgnored)
		l.core.emit(auditEventPasswordSetIgnored, false, map[string]string{"reason": "locked"})
		return
	}
	if err := l.core.key(credential); err != nil {
		l.core.metrics.Inc(MetricPasswordSetIgnored)
		l.core.emit(auditEventPasswordSetIgnored, false, map[string]string{"reason": "seal"})
		return
	}
	l.core.metrics.Inc(MetricPasswordSet)
	l.core.emit(auditEventPasswordSet, true, nil)
}

// Lock closes the lock if a credential has been set; otherwise it is a no-op.
func (l *MutableLock) Lock() {
	l.core.lock()
}

// Unlock opens the lock when a credential is set and candidate matches it.
func (l *MutableLock) Unlock(candidate string) {
	l.core.unlock(candidate)
}

// Locked reports whether the lock is closed. Unset locks are locked.
func (l *MutableLock) Locked() bool {
	return l.core.state() != StateUnlocked
}

// State returns the current state; StateUnset until SetPassword succeeds.
func (l *MutableLock) State() State {
	return l.core.state()
}

// ID returns the identifier used in audit events.
func (l *MutableLock) ID() string {
	return l.core.lockID()
}
