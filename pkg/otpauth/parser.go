package otpauth

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Config holds parser configuration.
type Config struct {
	// RequireIssuerMatch rejects URIs whose label issuer and "issuer" query
	// parameter are both present but disagree, restoring the strict rule
	// that provisioning tools historically applied.
	// Default: false (the label issuer wins and the mismatch is accepted).
	RequireIssuerMatch bool
}

// Parser validates otpauth:// provisioning URIs.
// It is stateless and safe for concurrent use; the zero value behaves like
// the default permissive parser.
type Parser struct {
	cfg Config
}

// NewParser creates a parser with the given configuration.
func NewParser(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

var defaultParser = &Parser{}

// Parse validates rawURI with the default permissive configuration.
func Parse(rawURI string) (*Key, error) {
	return defaultParser.Parse(rawURI)
}

// Parse decomposes and validates rawURI, returning the extracted Key or the
// first validation failure encountered. Checks run in a fixed order, so an
// input that is invalid in several ways always reports the same error:
// protocol, otp type, label, account name, issuer, secret, digits,
// algorithm, and finally the type-specific period or counter parameters.
func (p *Parser) Parse(rawURI string) (*Key, error) {
	if p == nil {
		p = defaultParser
	}

	u, err := url.Parse(rawURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProtocol, err)
	}
	if u.Scheme != "otpauth" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidProtocol, u.Scheme)
	}

	// url.Parse decodes only non-ASCII percent-escapes in the host;
	// ASCII escapes such as %74 already failed decomposition above.
	typ := Type(u.Host)
	if typ != TypeHOTP && typ != TypeTOTP {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOTPType, u.Host)
	}

	labelIssuer, accountName, err := splitLabel(u.Path)
	if err != nil {
		return nil, err
	}

	q := u.Query()

	secret := q.Get("secret")
	if secret == "" {
		return nil, ErrMissingSecretKey
	}

	issuer := labelIssuer
	if queryIssuer := q.Get("issuer"); queryIssuer != "" {
		if issuer == "" {
			issuer = queryIssuer
		} else if p.cfg.RequireIssuerMatch && issuer != queryIssuer {
			return nil, fmt.Errorf("%w: label %q, parameter %q", ErrIssuerMismatch, issuer, queryIssuer)
		}
	}

	digits := DigitsSix
	if q.Has("digits") {
		n, err := strconv.Atoi(q.Get("digits"))
		if err != nil || (n != 6 && n != 8) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDigits, q.Get("digits"))
		}
		digits = Digits(n)
	}

	var algorithm Algorithm
	if q.Has("algorithm") {
		algorithm = Algorithm(q.Get("algorithm"))
		switch algorithm {
		case AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512, AlgorithmMD5:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, q.Get("algorithm"))
		}
	}

	key := &Key{
		raw:         rawURI,
		typ:         typ,
		issuer:      issuer,
		accountName: accountName,
		secret:      secret,
		digits:      digits,
		algorithm:   algorithm,
	}

	switch typ {
	case TypeTOTP:
		// A period that does not parse is treated as absent, not rejected.
		// No error kind exists for it, and provisioners in the wild ship
		// strange values here.
		if q.Has("period") {
			if period, err := strconv.ParseFloat(q.Get("period"), 64); err == nil {
				key.period = period
				key.periodSet = true
			}
		}
	case TypeHOTP:
		if !q.Has("counter") {
			return nil, ErrMissingCounter
		}
		counter, err := strconv.ParseUint(q.Get("counter"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an unsigned integer", ErrMissingCounter, q.Get("counter"))
		}
		key.counter = counter
		key.counterSet = true
	}

	return key, nil
}

// splitLabel extracts the issuer and account name from the already-decoded
// path component. A single leading separator is stripped before splitting,
// so an account name may itself begin with a slash.
func splitLabel(path string) (issuer, accountName string, err error) {
	label := strings.TrimPrefix(path, "/")
	parts := strings.Split(label, ":")
	switch len(parts) {
	case 1:
		accountName = parts[0]
	case 2:
		issuer, accountName = parts[0], parts[1]
	default:
		return "", "", fmt.Errorf("%w: %q has %d segments", ErrInvalidLabel, label, len(parts))
	}
	if accountName == "" {
		return "", "", ErrMissingAccountName
	}
	if len(parts) == 2 && issuer == "" {
		return "", "", fmt.Errorf("%w: empty issuer segment in %q", ErrInvalidIssuer, label)
	}
	return issuer, accountName, nil
}
