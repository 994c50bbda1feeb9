package status

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownCode is reported for integers outside the catalog.
var ErrUnknownCode = errors.New("unknown status code")

// HTTPError binds an error message to a status code. An empty message is
// reported as the code's reason phrase.
type HTTPError struct {
	Message string
	Code    Code
}

// NewError returns an HTTPError carrying the code and the message.
func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	if len(h.Message) == 0 {
		return string(Text(h.Code))
	}

	return h.Message
}

// Parse returns the catalog member matching the integer. Integers which aren't
// in the catalog, even those inside the valid 1xx-5xx range, are rejected.
func Parse(code int) (Code, error) {
	if code < 0 || code >= len(texts) || len(texts[code]) == 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}

	return Code(code), nil
}

// UnmarshalJSON accepts a JSON number and rejects codes outside the catalog.
func (c *Code) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	num, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownCode, data)
	}

	code, err := Parse(num)
	if err != nil {
		return err
	}

	*c = code
	return nil
}
