// Package combolock provides a small combination-lock model: a sealed
// credential, a locked flag, and a pluggable [Validator] that decides whether a
// presented credential opens the lock.
//
// Two lock types share the same state machine:
//
//   - [Lock] fixes its credential at construction and starts locked.
//   - [MutableLock] starts unset, accepts a credential through
//     [MutableLock.SetPassword] while open, and stays open until
//     [MutableLock.Lock] is called.
//
// # Failure model
//
// Lock operations never return errors. A wrong combination, locking a lock
// that has no credential, or re-keying a locked lock are silent no-ops; the
// only observable signal is [Lock.Locked] (or the audit/metrics side channels).
// Errors are reserved for construction and configuration.
//
// # Concurrency
//
// A single lock is not safe for concurrent use. Callers sharing one lock across
// goroutines must synchronize externally. [Metrics] and [AuditDispatcher] are
// safe to share between locks.
//
// # What this package must NOT do
//
//   - Persist credentials or lock state.
//   - Put credentials (plain or sealed) into audit events or metrics.
//   - Import the metrics/export packages (no import cycles).
package combolock
