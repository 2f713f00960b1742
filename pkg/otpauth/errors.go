package otpauth

import "errors"

// Validation failures form a closed set. Parse reports exactly one of these
// per call, and callers branch on them with errors.Is; no other error kinds
// are returned.
var (
	// ErrInvalidProtocol indicates the input is not a well-formed URI or its
	// scheme is not "otpauth".
	ErrInvalidProtocol = errors.New("otpauth: invalid protocol")

	// ErrUnknownOTPType indicates the URI authority is neither "hotp" nor "totp".
	ErrUnknownOTPType = errors.New("otpauth: unknown otp type")

	// ErrInvalidLabel indicates the label does not split into one or two
	// colon-separated segments.
	ErrInvalidLabel = errors.New("otpauth: invalid label")

	// ErrMissingAccountName indicates the account segment of the label is empty.
	ErrMissingAccountName = errors.New("otpauth: missing account name")

	// ErrInvalidIssuer indicates a two-segment label with an empty issuer segment.
	ErrInvalidIssuer = errors.New("otpauth: invalid issuer")

	// ErrMissingSecretKey indicates the "secret" query parameter is absent or empty.
	ErrMissingSecretKey = errors.New("otpauth: missing secret key")

	// ErrInvalidDigits indicates a "digits" query parameter that is not the
	// integer 6 or 8.
	ErrInvalidDigits = errors.New("otpauth: invalid digits")

	// ErrUnknownAlgorithm indicates an "algorithm" query parameter outside the
	// supported set (SHA1, SHA256, SHA512, MD5).
	ErrUnknownAlgorithm = errors.New("otpauth: unknown algorithm")

	// ErrMissingCounter indicates an HOTP URI without a usable integer
	// "counter" query parameter.
	ErrMissingCounter = errors.New("otpauth: missing counter")

	// ErrIssuerMismatch indicates the label issuer and the "issuer" query
	// parameter disagree. It is returned only by parsers configured with
	// RequireIssuerMatch; the default parser accepts the mismatch and keeps
	// the label issuer.
	ErrIssuerMismatch = errors.New("otpauth: issuer mismatch")
)
