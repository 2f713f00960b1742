package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/algesten/url-otpauth/pkg/otpauth"
)

func TestRun_ValidURI(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"otpauth://totp/Example:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=Example"},
		strings.NewReader(""), stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}

	if !strings.Contains(stdout.String(), "otpauth totp key") {
		t.Errorf("expected key summary in output, got: %s", stdout.String())
	}

	// The human-readable rendering must not leak the secret.
	if strings.Contains(stdout.String(), "JBSWY3DPEHPK3PXP") {
		t.Errorf("expected secret to be redacted, got: %s", stdout.String())
	}
}

func TestRun_JSONOutput(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"-json", "otpauth://hotp/alice?secret=JBSWY3DPEHPK3PXP&counter=5"},
		strings.NewReader(""), stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}

	var got map[string]interface{}
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("expected JSON output, got: %s", stdout.String())
	}
	if got["type"] != "hotp" {
		t.Errorf("expected type hotp, got %v", got["type"])
	}
	if got["secret"] != "JBSWY3DPEHPK3PXP" {
		t.Errorf("expected secret in JSON output, got %v", got["secret"])
	}
	if got["counter"] != float64(5) {
		t.Errorf("expected counter 5, got %v", got["counter"])
	}
}

func TestRun_ValidationFailure(t *testing.T) {
	const uri = "otpauth://hotp/alice?secret=JBSWY3DPEHPK3PXP"

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{uri}, strings.NewReader(""), stdout, stderr)

	if exitCode != exitValidation {
		t.Errorf("expected exit code %d, got %d", exitValidation, exitCode)
	}

	if !strings.Contains(stderr.String(), "MISSING_COUNTER") {
		t.Errorf("expected MISSING_COUNTER in stderr, got: %s", stderr.String())
	}

	// The failing input is echoed alongside the kind name.
	if !strings.Contains(stderr.String(), uri) {
		t.Errorf("expected offending URI in stderr, got: %s", stderr.String())
	}
}

func TestRun_StrictIssuerMismatch(t *testing.T) {
	const uri = "otpauth://totp/Example:alice?secret=JBSWY3DPEHPK3PXP&issuer=Other"

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"-strict", uri}, strings.NewReader(""), stdout, stderr)

	if exitCode != exitValidation {
		t.Errorf("expected exit code %d, got %d", exitValidation, exitCode)
	}
	if !strings.Contains(stderr.String(), "ISSUER_MISMATCH") {
		t.Errorf("expected ISSUER_MISMATCH in stderr, got: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), uri) {
		t.Errorf("expected offending URI in stderr, got: %s", stderr.String())
	}

	// Without -strict the same URI is accepted.
	stdout.Reset()
	stderr.Reset()

	exitCode = run([]string{uri}, strings.NewReader(""), stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}
}

func TestRun_StdinURI(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	stdin := strings.NewReader("otpauth://totp/alice?secret=JBSWY3DPEHPK3PXP\n")

	exitCode := run([]string{"-"}, stdin, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), `account="alice"`) {
		t.Errorf("expected key summary in output, got: %s", stdout.String())
	}
}

func TestRun_StdinEmpty(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"-"}, strings.NewReader(""), stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
	if !strings.Contains(stderr.String(), "no URI on stdin") {
		t.Errorf("expected 'no URI on stdin' in stderr, got: %s", stderr.String())
	}
}

func TestRun_NoArgs(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{}, strings.NewReader(""), stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
	if !strings.Contains(stderr.String(), "expected exactly one URI") {
		t.Errorf("expected usage error in stderr, got: %s", stderr.String())
	}
}

func TestRun_TooManyArgs(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"otpauth://totp/a?secret=X", "otpauth://totp/b?secret=X"},
		strings.NewReader(""), stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"-unknown", "otpauth://totp/alice?secret=X"},
		strings.NewReader(""), stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
}

func TestRun_Help(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"-h"}, strings.NewReader(""), stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("expected usage text in stderr, got: %s", stderr.String())
	}
}

func TestKindName(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{otpauth.ErrInvalidProtocol, "INVALID_PROTOCOL"},
		{otpauth.ErrUnknownOTPType, "UNKNOWN_OTP"},
		{otpauth.ErrInvalidLabel, "INVALID_LABEL"},
		{otpauth.ErrMissingAccountName, "MISSING_ACCOUNT_NAME"},
		{otpauth.ErrInvalidIssuer, "INVALID_ISSUER"},
		{otpauth.ErrMissingSecretKey, "MISSING_SECRET_KEY"},
		{otpauth.ErrInvalidDigits, "INVALID_DIGITS"},
		{otpauth.ErrUnknownAlgorithm, "UNKNOWN_ALGORITHM"},
		{otpauth.ErrMissingCounter, "MISSING_COUNTER"},
		{otpauth.ErrIssuerMismatch, "ISSUER_MISMATCH"},
		{errors.New("something else"), "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := kindName(tt.err); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestKindName_Wrapped tests that wrapped sentinels still map to their kind
func TestKindName_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("%w: extra detail", otpauth.ErrInvalidDigits)
	if got := kindName(wrapped); got != "INVALID_DIGITS" {
		t.Errorf("expected INVALID_DIGITS, got %q", got)
	}
}
