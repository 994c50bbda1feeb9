package method

import (
	"errors"
	"fmt"

	"github.com/indigo-web/utils/uf"
)

//go:generate stringer -type=Method
type Method uint8

const (
	Unknown Method = iota
	HEAD
	GET
	POST
	PUT
	PATCH
	DELETE
	OPTIONS

	// Count is the greatest integer value of all the methods. As Unknown takes zero,
	// it is the number of methods as well
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
//
// TRACE and CONNECT aren't supported, therefore are parsed as Unknown.
var List = []Method{HEAD, GET, POST, PUT, PATCH, DELETE, OPTIONS}

// ErrUnknownMethod is reported for tokens outside the catalog.
var ErrUnknownMethod = errors.New("unknown request method")

// Is reports whether both methods are the same one.
func (m Method) Is(other Method) bool {
	return m == other
}

// Parse matches the token case-sensitively, as method tokens are.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return Unknown
}

// ParseBytes is Parse over a byte slice. The slice isn't copied.
func ParseBytes(b []byte) Method {
	return Parse(uf.B2S(b))
}

// MarshalText returns the method token. Unknown methods can't be marshalled.
func (m Method) MarshalText() ([]byte, error) {
	if m == Unknown || m > Count {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}

	return []byte(m.String()), nil
}

// UnmarshalText parses the token and rejects methods outside the catalog.
func (m *Method) UnmarshalText(text []byte) error {
	parsed := ParseBytes(text)
	if parsed == Unknown {
		return fmt.Errorf("%w: %q", ErrUnknownMethod, text)
	}

	*m = parsed
	return nil
}
