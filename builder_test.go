package combolock

import (
	"testing"

	"github.com/MrEthical07/combolock/password"
)

func TestBuilderBuildsSharedCollaborators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Validator = ValidatorSHA1
	cfg.Metrics.Enabled = true
	cfg.Audit.Enabled = true

	sink := &countingSink{}
	smith, err := NewBuilder().WithConfig(cfg).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	a, err := smith.NewLock("1337")
	if err != nil {
		t.Fatalf("NewLock: %v", err)
	}
	b, err := smith.NewMutable()
	if err != nil {
		t.Fatalf("NewMutable: %v", err)
	}
	b.SetPassword("1234")
	b.Lock()

	a.Unlock("1337")
	b.Unlock("1337")
	if a.Locked() || !b.Locked() {
		t.Fatalf("unexpected states a=%s b=%s", a.State(), b.State())
	}
	if ValidatorName(a.Validator()) != ValidatorSHA1 {
		t.Fatalf("expected sha1 validator, got %q", ValidatorName(a.Validator()))
	}

	smith.Close()

	snap := smith.MetricsSnapshot()
	if snap.Counters[MetricLockCreated] != 2 {
		t.Fatalf("expected 2 locks created, got %d", snap.Counters[MetricLockCreated])
	}
	if snap.Counters[MetricUnlockSuccess] != 1 || snap.Counters[MetricUnlockFailure] != 1 {
		t.Fatalf("unexpected unlock counters %v", snap.Counters)
	}
	// created x2, password_set, lock, unlock_success, unlock_failure
	if got := sink.Count(); got != 6 {
		t.Fatalf("expected 6 audit events, got %d", got)
	}
	if smith.AuditDropped() != 0 {
		t.Fatalf("unexpected drops %d", smith.AuditDropped())
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected second Build to fail")
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Validator = "rot13"
	if _, err := NewBuilder().WithConfig(cfg).Build(); err == nil {
		t.Fatal("expected invalid config to fail")
	}
}

func TestBuilderValidatorOverride(t *testing.T) {
	smith, err := NewBuilder().WithValidator(HashedEquality{}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer smith.Close()

	l, err := smith.NewLock("1234")
	if err != nil {
		t.Fatalf("NewLock: %v", err)
	}
	if ValidatorName(l.Validator()) != ValidatorSHA1 {
		t.Fatalf("expected override validator, got %q", ValidatorName(l.Validator()))
	}
	if smith.Config().Validator != ValidatorPlain {
		t.Fatalf("override must not rewrite config, got %q", smith.Config().Validator)
	}
}

func TestLocksmithArgon2MatchesPlainOutcomes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Validator = ValidatorArgon2
	cfg.Password = password.Config{Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 16}

	smith, err := NewBuilder().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer smith.Close()

	a, err := smith.NewLock("1337")
	if err != nil {
		t.Fatalf("NewLock: %v", err)
	}
	plain := MustNew("1337")

	for _, candidate := range []string{"1336", "", "1337"} {
		a.Unlock(candidate)
		plain.Unlock(candidate)
		if a.Locked() != plain.Locked() {
			t.Fatalf("after Unlock(%q): argon2 locked=%v, plain locked=%v", candidate, a.Locked(), plain.Locked())
		}
	}
	if a.Locked() {
		t.Fatal("expected argon2 lock to open with the right combination")
	}
}
