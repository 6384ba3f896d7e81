package combolock

// State is the observable position of a lock in its state machine.
type State uint8

const (
	// StateUnset means no credential has been stored. Unset locks report locked.
	StateUnset State = iota
	// StateLocked means a credential is stored and the lock is closed.
	StateLocked
	// StateUnlocked means a credential is stored and the lock is open.
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateUnset:
		return "unset"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// Lockable is the behavior shared by [Lock] and [MutableLock].
type Lockable interface {
	Lock()
	Unlock(candidate string)
	Locked() bool
	State() State
}

var (
	_ Lockable = (*Lock)(nil)
	_ Lockable = (*MutableLock)(nil)
)
