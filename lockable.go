package combolock

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

const (
	auditEventLockCreated        = "lock_created"
	auditEventLock               = "lock"
	auditEventLockIgnored        = "lock_ignored"
	auditEventUnlockSuccess      = "unlock_success"
	auditEventUnlockFailure      = "unlock_failure"
	auditEventPasswordSet        = "password_set"
	auditEventPasswordSetIgnored = "password_set_ignored"
)

// lockable is the state and behavior shared by Lock and MutableLock.
// The zero value is an unset lock using PlainEquality.
type lockable struct {
	id        string
	sealed    string
	keyed     bool
	locked    bool
	validator Validator
	metrics   *Metrics
	audit     AuditSink
}

func (l *lockable) apply(o options) {
	l.id = o.id
	l.validator = o.validator
	l.metrics = o.metrics
	l.audit = o.audit
}

func (l *lockable) v() Validator {
	if l.validator == nil {
		l.validator = PlainEquality{}
	}
	return l.validator
}

func (l *lockable) state() State {
	switch {
	case !l.keyed:
		return StateUnset
	case l.locked:
		return StateLocked
	default:
		return StateUnlocked
	}
}

// key seals credential and stores it. The locked flag is left untouched.
func (l *lockable) key(credential string) error {
	sealed, err := l.v().Seal(credential)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSealFailed, err)
	}
	l.sealed = sealed
	l.keyed = true
	return nil
}

func (l *lockable) lock() {
	if !l.keyed {
		l.metrics.Inc(MetricLockIgnored)
		l.emit(auditEventLockIgnored, false, nil)
		return
	}
	l.locked = true
	l.metrics.Inc(MetricLock)
	l.emit(auditEventLock, true, nil)
}

func (l *lockable) unlock(candidate string) {
	if !l.keyed {
		l.metrics.Inc(MetricUnlockFailure)
		l.emit(auditEventUnlockFailure, false, map[string]string{"reason": "unset"})
		return
	}

	var start time.Time
	if l.metrics.LatencyEnabled() {
		start = time.Now()
	}
	ok := l.v().Matches(candidate, l.sealed)
	if !start.IsZero() {
		l.metrics.Observe(MetricUnlockLatency, time.Since(start))
	}

	if !ok {
		l.metrics.Inc(MetricUnlockFailure)
		l.emit(auditEventUnlockFailure, false, map[string]string{"reason": "mismatch"})
		return
	}
	l.locked = false
	l.metrics.Inc(MetricUnlockSuccess)
	l.emit(auditEventUnlockSuccess, true, nil)
}

func (l *lockable) lockID() string {
	if l.id == "" {
		l.id = uuid.NewString()
	}
	return l.id
}

func (l *lockable) emit(eventType string, success bool, metadata map[string]string) {
	if l.audit == nil {
		return
	}
	if metadata == nil {
		metadata = make(map[string]string, 2)
	}
	metadata["validator"] = ValidatorName(l.v())
	metadata["state"] = l.state().String()

	l.audit.Emit(context.Background(), AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		LockID:    l.lockID(),
		Success:   success,
		Metadata:  metadata,
	})
}

// ValidatorName returns a short label for v suitable for audit metadata.
// Validators may provide their own label through a Name() string method.
func ValidatorName(v Validator) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case PlainEquality, *PlainEquality:
		return ValidatorPlain
	case HashedEquality:
		return hashedName(tv)
	case *HashedEquality:
		if tv == nil {
			return ""
		}
		return hashedName(*tv)
	case interface{ Name() string }:
		return tv.Name()
	default:
		return fmt.Sprintf("%T", v)
	}
}

func hashedName(h HashedEquality) string {
	if h.Hash == nil {
		return ValidatorSHA1
	}
	if reflect.ValueOf(h.Hash).Pointer() == reflect.ValueOf(SHA1Hex).Pointer() {
		return ValidatorSHA1
	}
	return "hashed"
}
