package yadict

import (
	"errors"
	"fmt"
)

// Errors the service reports through the code field of its JSON body.
var (
	// ErrKeyInvalid indicates the API token is not valid.
	ErrKeyInvalid = errors.New("API key is invalid")

	// ErrKeyBlocked indicates the API token has been blocked.
	ErrKeyBlocked = errors.New("API key is blocked")

	// ErrDailyLimitExceeded indicates the daily request quota is spent.
	ErrDailyLimitExceeded = errors.New("daily request limit exceeded")

	// ErrTextTooLong indicates the query text exceeded the service limit.
	ErrTextTooLong = errors.New("query text is too long")

	// ErrLangNotSupported indicates the requested language pair is not supported.
	ErrLangNotSupported = errors.New("language pair is not supported")
)

// ErrInvalidDataFormat indicates the response parsed as JSON but did not
// have the expected shape.
var ErrInvalidDataFormat = errors.New("unexpected response data format")

// ErrMissingToken indicates the environment variable holding the token is
// unset or empty.
var ErrMissingToken = errors.New("API token is not set")

// UnknownCodeError carries a service error code outside the documented set.
type UnknownCodeError struct {
	Code int
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("dictionary service error: code %d", e.Code)
}

// TransportError wraps a network-level failure.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError wraps a JSON decoding failure, preserving the parser diagnostic.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError reports a failure to load the token from the environment.
type ConfigError struct {
	Var string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("read token from %s: %v", e.Var, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// serviceError maps the code embedded in an error body. These are the
// service's own codes, distinct from the HTTP status line.
func serviceError(code int) error {
	switch code {
	case 401:
		return ErrKeyInvalid
	case 402:
		return ErrKeyBlocked
	case 403:
		return ErrDailyLimitExceeded
	case 413:
		return ErrTextTooLong
	case 501:
		return ErrLangNotSupported
	default:
		return &UnknownCodeError{Code: code}
	}
}
