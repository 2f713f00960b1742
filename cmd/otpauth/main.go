// otpauth is a CLI tool that validates otpauth:// provisioning URIs.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/algesten/url-otpauth/pkg/otpauth"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("otpauth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jsonOut := fs.Bool("json", false, "Output the parsed key as JSON (includes the secret)")
	strict := fs.Bool("strict", false, "Reject URIs whose label issuer and issuer parameter disagree")
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		return exitCommandError
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: expected exactly one URI argument")
		printUsage(stderr)
		return exitCommandError
	}

	uri := fs.Arg(0)
	if uri == "-" {
		line, err := readURI(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		uri = line
	}

	parser := otpauth.NewParser(otpauth.Config{RequireIssuerMatch: *strict})

	key, err := parser.Parse(uri)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v (input %q)\n", kindName(err), err, uri)
		return exitValidation
	}

	if *jsonOut {
		output, err := json.MarshalIndent(key, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintln(stdout, string(output))
		return exitSuccess
	}

	// The default rendering redacts the secret; use -json for the full key.
	fmt.Fprintln(stdout, key)
	return exitSuccess
}

func readURI(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("no URI on stdin")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// kindName returns a stable identifier for a validation failure, so scripts
// can match stderr without depending on error message wording.
func kindName(err error) string {
	switch {
	case errors.Is(err, otpauth.ErrInvalidProtocol):
		return "INVALID_PROTOCOL"
	case errors.Is(err, otpauth.ErrUnknownOTPType):
		return "UNKNOWN_OTP"
	case errors.Is(err, otpauth.ErrInvalidLabel):
		return "INVALID_LABEL"
	case errors.Is(err, otpauth.ErrMissingAccountName):
		return "MISSING_ACCOUNT_NAME"
	case errors.Is(err, otpauth.ErrInvalidIssuer):
		return "INVALID_ISSUER"
	case errors.Is(err, otpauth.ErrMissingSecretKey):
		return "MISSING_SECRET_KEY"
	case errors.Is(err, otpauth.ErrInvalidDigits):
		return "INVALID_DIGITS"
	case errors.Is(err, otpauth.ErrUnknownAlgorithm):
		return "UNKNOWN_ALGORITHM"
	case errors.Is(err, otpauth.ErrMissingCounter):
		return "MISSING_COUNTER"
	case errors.Is(err, otpauth.ErrIssuerMismatch):
		return "ISSUER_MISMATCH"
	default:
		return "ERROR"
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `otpauth - validate otpauth:// provisioning URIs

Usage:
  otpauth [options] <uri>
  otpauth [options] -    read the URI from the first line of stdin

Options:
  -json     Output the parsed key as JSON (includes the secret)
  -strict   Reject URIs whose label issuer and issuer parameter disagree
  -h        Show this help message

Exit codes:
  0  the URI is valid
  1  usage error
  2  the URI failed validation; stderr names the failing check

Examples:
  otpauth 'otpauth://totp/Example:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=Example'
  otpauth -json 'otpauth://hotp/alice?secret=JBSWY3DPEHPK3PXP&counter=5'`)
}
