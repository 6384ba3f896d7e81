package combolock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MrEthical07/combolock/password"
)

// ValidatorArgon2 names the salted password.Argon2 validator.
const ValidatorArgon2 = "argon2id"

// Config describes how a [Locksmith] builds validators and shared
// collaborators. The zero value is not valid; start from [DefaultConfig].
type Config struct {
	// Validator is one of "plain", "sha1", or "argon2id".
	Validator string          `yaml:"validator"`
	Password  password.Config `yaml:"password"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Audit     AuditConfig     `yaml:"audit"`
}

// DefaultConfig returns a plain-equality configuration with metrics and audit
// disabled.
func DefaultConfig() Config {
	return Config{
		Validator: ValidatorPlain,
		Password:  password.DefaultConfig(),
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
	}
}

// Validate reports the first configuration error, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) validate() error {
	switch normalizeValidator(c.Validator) {
	case ValidatorPlain, ValidatorSHA1:
	case ValidatorArgon2:
		if err := password.ValidateConfig(c.Password); err != nil {
			return err
		}
	default:
		return fmt.Errorf("Validator %q is not one of plain, sha1, argon2id", c.Validator)
	}

	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when audit is enabled")
	}

	return nil
}

// NewValidator builds the validator named by c.Validator.
func (c Config) NewValidator() (Validator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if normalizeValidator(c.Validator) == ValidatorArgon2 {
		return password.NewArgon2(c.Password)
	}
	return ValidatorByName(c.Validator)
}

// Options translates c into lock options for callers constructing locks with
// New or NewMutable directly. Each call returns a fresh metrics registry.
// When auditing is enabled, events go to sink synchronously; use a [Builder]
// for buffered delivery through an AuditDispatcher.
func (c Config) Options(sink AuditSink) ([]Option, error) {
	v, err := c.NewValidator()
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithValidator(v),
		WithMetrics(NewMetrics(c.Metrics)),
	}
	if c.Audit.Enabled && sink != nil {
		opts = append(opts, WithAuditSink(sink))
	}
	return opts, nil
}

func normalizeValidator(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ValidatorPlain
	}
	return name
}

// LintWarning is a non-fatal configuration observation.
type LintWarning struct {
	Code    string
	Message string
}

// LintWarnings is the result of [Config.Lint].
type LintWarnings []LintWarning

// Codes returns the warning codes in order.
func (ws LintWarnings) Codes() []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Code)
	}
	return out
}

// Lint reports valid but questionable settings. It does not validate; call
// Validate for that.
func (c Config) Lint() LintWarnings {
	var ws LintWarnings

	switch normalizeValidator(c.Validator) {
	case ValidatorPlain:
		ws = append(ws, LintWarning{
			Code:    "plain_credentials",
			Message: "credentials are kept in memory as plaintext",
		})
	case ValidatorSHA1:
		ws = append(ws, LintWarning{
			Code:    "sha1_unsalted",
			Message: "sha1 validator is unsalted and fast; use argon2id for real secrets",
		})
	}

	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		ws = append(ws, LintWarning{
			Code:    "latency_without_metrics",
			Message: "latency histograms have no effect while metrics are disabled",
		})
	}

	if !c.Audit.Enabled {
		ws = append(ws, LintWarning{
			Code:    "audit_disabled",
			Message: "lock transitions are not audited",
		})
	} else if !c.Audit.DropIfFull {
		ws = append(ws, LintWarning{
			Code:    "audit_blocking",
			Message: "a slow audit sink will block lock operations",
		})
	}

	return ws
}
