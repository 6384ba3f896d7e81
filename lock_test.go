package combolock

import (
	"errors"
	"testing"
)

var lockValidators = map[string]Validator{
	"plain": PlainEquality{},
	"sha1":  HashedEquality{},
}

func TestNewStartsLocked(t *testing.T) {
	for name, v := range lockValidators {
		for _, c := range []string{"1337", "", "correct horse battery staple"} {
			l := MustNew(c, WithValidator(v))
			if !l.Locked() {
				t.Fatalf("%s: New(%q) should start locked", name, c)
			}
			if l.State() != StateLocked {
				t.Fatalf("%s: expected StateLocked, got %s", name, l.State())
			}
		}
	}
}

func TestUnlockWithStoredCredential(t *testing.T) {
	for name, v := range lockValidators {
		for _, c := range []string{"1337", "", "0000"} {
			l := MustNew(c, WithValidator(v))
			l.Unlock(c)
			if l.Locked() {
				t.Fatalf("%s: Unlock(%q) after New(%q) should open the lock", name, c, c)
			}
		}
	}
}

func TestUnlockWithWrongCredentialStaysLocked(t *testing.T) {
	for name, v := range lockValidators {
		l := MustNew("1337", WithValidator(v))
		for _, wrong := range []string{"1336", "", "13371", " 1337"} {
			l.Unlock(wrong)
			if !l.Locked() {
				t.Fatalf("%s: Unlock(%q) should leave the lock closed", name, wrong)
			}
		}
	}
}

func TestLockIdempotent(t *testing.T) {
	l := MustNew("1337")
	l.Lock()
	l.Lock()
	if !l.Locked() {
		t.Fatal("Lock on a locked lock should keep it locked")
	}

	l.Unlock("1337")
	l.Unlock("1337")
	if l.Locked() {
		t.Fatal("repeated correct Unlock should leave the lock open")
	}

	l.Lock()
	if !l.Locked() {
		t.Fatal("Lock should close an open lock")
	}
}

func TestWrongCandidateDoesNotRelockOpenLock(t *testing.T) {
	l := MustNew("1337")
	l.Unlock("1337")
	l.Unlock("0000")
	if l.Locked() {
		t.Fatal("a failed Unlock on an open lock should not change its state")
	}
}

func TestReferenceScenarioSingleLock(t *testing.T) {
	l := MustNew("1337")
	l.Unlock("1336")
	if !l.Locked() {
		t.Fatal("expected locked after wrong combination")
	}
	l.Unlock("1337")
	if l.Locked() {
		t.Fatal("expected unlocked after right combination")
	}
}

func TestReferenceScenarioTwoLocks(t *testing.T) {
	for name, vb := range lockValidators {
		a := MustNew("1337")
		b := MustNew("1234", WithValidator(vb))

		a.Unlock("1337")
		b.Unlock("1337")

		if a.Locked() {
			t.Fatalf("%s: a should be unlocked", name)
		}
		if !b.Locked() {
			t.Fatalf("%s: b should still be locked", name)
		}

		b.Unlock("1234")
		if b.Locked() {
			t.Fatalf("%s: b should be unlocked", name)
		}
	}
}

func TestNewRejectsNilValidator(t *testing.T) {
	if _, err := New("1337", WithValidator(nil)); !errors.Is(err, ErrNilValidator) {
		t.Fatalf("expected ErrNilValidator, got %v", err)
	}
}

func TestNewPropagatesSealFailure(t *testing.T) {
	_, err := New("1337", WithValidator(failingValidator{}))
	if !errors.Is(err, ErrSealFailed) {
		t.Fatalf("expected ErrSealFailed, got %v", err)
	}
}

func TestMustNewPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustNew to panic")
		}
	}()
	MustNew("1337", WithValidator(failingValidator{}))
}

func TestLockIDs(t *testing.T) {
	a := MustNew("1337")
	b := MustNew("1337")
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("expected distinct generated IDs, got %q and %q", a.ID(), b.ID())
	}
	id := a.ID()
	a.Unlock("1337")
	if a.ID() != id {
		t.Fatal("expected stable ID")
	}

	named := MustNew("1337", WithID("front-door"))
	if named.ID() != "front-door" {
		t.Fatalf("expected explicit ID, got %q", named.ID())
	}
}

func TestLockValidatorAccessor(t *testing.T) {
	l := MustNew("1337", WithValidator(HashedEquality{}))
	if ValidatorName(l.Validator()) != ValidatorSHA1 {
		t.Fatalf("unexpected validator %T", l.Validator())
	}
	if ValidatorName(MustNew("x").Validator()) != ValidatorPlain {
		t.Fatal("expected PlainEquality default")
	}
}
