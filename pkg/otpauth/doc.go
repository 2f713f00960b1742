// Package otpauth parses and validates otpauth:// provisioning URIs, the
// format authenticator apps scan (usually as a QR code) to enroll a TOTP
// (RFC 6238) or HOTP (RFC 4226) credential:
//
//	otpauth://totp/Example:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=Example
//	otpauth://hotp/alice?secret=JBSWY3DPEHPK3PXP&counter=5
//
// The package is a deliberately strict front end: a URI either yields a
// fully-populated, immutable Key or exactly one error from a closed set.
// It does not generate codes, build URIs, or decode the Base32 secret;
// pair it with a library like github.com/pquerna/otp for those.
//
// # Parsing
//
// Parse validates a URI and extracts its parameters:
//
//	key, err := otpauth.Parse(uri)
//	if err != nil {
//	    log.Fatalf("rejected: %v", err)
//	}
//
//	fmt.Println(key.Type())        // totp or hotp
//	fmt.Println(key.AccountName()) // never empty
//	fmt.Println(key.Issuer())      // possibly empty
//	fmt.Println(key.Digits())      // 6 unless the URI said 8
//
// Optional parameters expose their presence explicitly, so callers can tell
// "not specified" apart from a zero value:
//
//	if alg, ok := key.Algorithm(); ok {
//	    // the URI named an algorithm; otherwise apply your own default
//	}
//	if period, ok := key.Period(); ok {
//	    // TOTP step in seconds, only when the URI carried one
//	}
//	if counter, ok := key.Counter(); ok {
//	    // present exactly when key.Type() == otpauth.TypeHOTP
//	}
//
// # Error Handling
//
// Every rejection is one of the sentinel errors declared in this package
// (ErrInvalidProtocol, ErrUnknownOTPType, ErrInvalidLabel,
// ErrMissingAccountName, ErrInvalidIssuer, ErrMissingSecretKey,
// ErrInvalidDigits, ErrUnknownAlgorithm, ErrMissingCounter, plus
// ErrIssuerMismatch for strict parsers). Branch with errors.Is:
//
//	_, err := otpauth.Parse(uri)
//	switch {
//	case errors.Is(err, otpauth.ErrMissingSecretKey):
//	    // ask the user to re-scan the QR code
//	case errors.Is(err, otpauth.ErrUnknownAlgorithm):
//	    // provisioner uses an unsupported hash
//	}
//
// Validation is ordered and short-circuits: an input that is broken in
// several ways always reports the first failing check, so error kinds are
// stable across calls and suitable for tests and user-facing diagnostics.
//
// # Strict Issuer Matching
//
// A URI can name its issuer twice, in the label and in the issuer query
// parameter. By default the label wins and a disagreement is tolerated.
// Provisioning pipelines that want the historical strict behavior opt in:
//
//	p := otpauth.NewParser(otpauth.Config{RequireIssuerMatch: true})
//	_, err := p.Parse("otpauth://totp/Example:alice?secret=X&issuer=Other")
//	// errors.Is(err, otpauth.ErrIssuerMismatch) == true
//
// # Code Generation
//
// Key.OTPKey bridges into github.com/pquerna/otp:
//
//	key, _ := otpauth.Parse(uri)
//	otpKey, _ := key.OTPKey()
//	code, _ := totp.GenerateCode(otpKey.Secret(), time.Now())
//
// # Thread Safety
//
// Parsing is a pure function over its input string. A Parser holds no
// mutable state and any number of goroutines may share one, or call the
// package-level Parse concurrently.
package otpauth
