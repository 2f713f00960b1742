package otpauth

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Type identifies the one-time-password scheme a key provisions.
type Type string

const (
	// TypeTOTP is the time-based scheme (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP is the counter-based scheme (RFC 4226).
	TypeHOTP Type = "hotp"
)

// Algorithm is the hash algorithm named by a provisioning URI. The match
// against the "algorithm" query parameter is exact and case-sensitive.
type Algorithm string

const (
	// AlgorithmSHA1 is the default of most authenticator apps.
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 selects HMAC-SHA256.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 selects HMAC-SHA512.
	AlgorithmSHA512 Algorithm = "SHA512"
	// AlgorithmMD5 is accepted for compatibility with legacy provisioners.
	AlgorithmMD5 Algorithm = "MD5"
)

// Digits is the length of the generated one-time codes. Only six and eight
// are valid in a provisioning URI.
type Digits int

const (
	// DigitsSix is the default when the URI carries no "digits" parameter.
	DigitsSix Digits = 6
	// DigitsEight selects eight-digit codes.
	DigitsEight Digits = 8
)

// String returns the decimal representation of the digit count.
func (d Digits) String() string {
	return strconv.Itoa(int(d))
}

// Key is the descriptor extracted from a valid otpauth:// URI. It is an
// immutable value: every field is fixed by Parse and exposed through
// accessors that make the invariants explicit (a counter exists if and only
// if the key is HOTP, a period can only exist on a TOTP key).
type Key struct {
	raw         string
	typ         Type
	issuer      string
	accountName string
	secret      string
	digits      Digits
	algorithm   Algorithm // "" when the URI named no algorithm
	period      float64
	periodSet   bool
	counter     uint64
	counterSet  bool
}

// Type reports whether the key is TOTP or HOTP.
func (k *Key) Type() Type {
	return k.typ
}

// AccountName returns the user-facing account label. It is never empty.
func (k *Key) AccountName() string {
	return k.accountName
}

// Issuer returns the provider name, reconciled from the label and the
// "issuer" query parameter. It may be empty.
func (k *Key) Issuer() string {
	return k.issuer
}

// Secret returns the shared key exactly as it appeared in the URI. The
// Base32 content is not validated here; decode it before use.
func (k *Key) Secret() string {
	return k.secret
}

// Digits returns the code length, six unless the URI asked for eight.
func (k *Key) Digits() Digits {
	return k.digits
}

// Algorithm returns the hash algorithm and whether the URI named one. When
// ok is false the URI left the algorithm unspecified and the caller should
// apply its own default rather than assume SHA1.
func (k *Key) Algorithm() (alg Algorithm, ok bool) {
	return k.algorithm, k.algorithm != ""
}

// Period returns the TOTP step in seconds and whether the URI supplied one.
// It is never set for HOTP keys, and no range checking is applied to the
// value.
func (k *Key) Period() (seconds float64, ok bool) {
	return k.period, k.periodSet
}

// Counter returns the HOTP counter and whether it is present. It is present
// exactly when Type is TypeHOTP; Parse rejects HOTP URIs without one.
func (k *Key) Counter() (counter uint64, ok bool) {
	return k.counter, k.counterSet
}

// URL returns the raw URI string the key was parsed from, unmodified. Note
// that it still contains the secret in clear text.
func (k *Key) URL() string {
	return k.raw
}

// String returns a one-line summary of the key suitable for logs and
// diagnostics. The secret is redacted.
func (k *Key) String() string {
	s := fmt.Sprintf("otpauth %s key account=%q issuer=%q digits=%s", k.typ, k.accountName, k.issuer, k.digits)
	if alg, ok := k.Algorithm(); ok {
		s += fmt.Sprintf(" algorithm=%s", alg)
	}
	if period, ok := k.Period(); ok {
		s += fmt.Sprintf(" period=%gs", period)
	}
	if counter, ok := k.Counter(); ok {
		s += fmt.Sprintf(" counter=%d", counter)
	}
	return s
}

// keyJSON is the wire form of a Key. Optional parameters are omitted when
// the URI did not carry them.
type keyJSON struct {
	Type        Type      `json:"type"`
	Issuer      string    `json:"issuer,omitempty"`
	AccountName string    `json:"account_name"`
	Secret      string    `json:"secret"`
	Digits      Digits    `json:"digits"`
	Algorithm   Algorithm `json:"algorithm,omitempty"`
	Period      *float64  `json:"period,omitempty"`
	Counter     *uint64   `json:"counter,omitempty"`
}

// MarshalJSON renders the key, secret included, for machine consumers such
// as the otpauth CLI. Use String for displays that must not leak the secret.
func (k *Key) MarshalJSON() ([]byte, error) {
	out := keyJSON{
		Type:        k.typ,
		Issuer:      k.issuer,
		AccountName: k.accountName,
		Secret:      k.secret,
		Digits:      k.digits,
		Algorithm:   k.algorithm,
	}
	if k.periodSet {
		period := k.period
		out.Period = &period
	}
	if k.counterSet {
		counter := k.counter
		out.Counter = &counter
	}
	return json.Marshal(out)
}
