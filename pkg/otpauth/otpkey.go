package otpauth

import (
	"errors"

	"github.com/pquerna/otp"
)

var errNilKey = errors.New("otpauth: key is nil")

// OTPKey converts the key into a github.com/pquerna/otp Key so callers can
// hand it to that library's totp and hotp code generators. The conversion
// re-wraps the already-validated URI; this package stays a strict front end
// and leaves code computation to the otp library.
func (k *Key) OTPKey() (*otp.Key, error) {
	if k == nil {
		return nil, errNilKey
	}
	return otp.NewKeyFromURL(k.raw)
}
