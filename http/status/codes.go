package status

import "strconv"

type (
	Code   uint16
	Status string
)

// HTTP status codes as registered with IANA.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	Continue           Code = 100 // RFC 9110, 15.2.1
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2
	Processing         Code = 102 // RFC 2518, 10.1 (Deprecated)
	EarlyHints         Code = 103 // RFC 8297

	OK                   Code = 200 // RFC 9110, 15.3.1
	Created              Code = 201 // RFC 9110, 15.3.2
	Accepted             Code = 202 // RFC 9110, 15.3.3
	NonAuthoritativeInfo Code = 203 // RFC 9110, 15.3.4
	NoContent            Code = 204 // RFC 9110, 15.3.5
	ResetContent         Code = 205 // RFC 9110, 15.3.6
	PartialContent       Code = 206 // RFC 9110, 15.3.7
	MultiStatus          Code = 207 // RFC 4918, 11.1
	AlreadyReported      Code = 208 // RFC 5842, 7.1
	IMUsed               Code = 226 // RFC 3229, 10.4.1

	MultipleChoices   Code = 300 // RFC 9110, 15.4.1
	MovedPermanently  Code = 301 // RFC 9110, 15.4.2
	Found             Code = 302 // RFC 9110, 15.4.3
	SeeOther          Code = 303 // RFC 9110, 15.4.4
	NotModified       Code = 304 // RFC 9110, 15.4.5
	UseProxy          Code = 305 // RFC 9110, 15.4.6 (Deprecated)
	Unused            Code = 306 // RFC 9110, 15.4.7 (Reserved)
	TemporaryRedirect Code = 307 // RFC 9110, 15.4.8
	PermanentRedirect Code = 308 // RFC 9110, 15.4.9

	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	Unauthorized                Code = 401 // RFC 9110, 15.5.2
	PaymentRequired             Code = 402 // RFC 9110, 15.5.3
	Forbidden                   Code = 403 // RFC 9110, 15.5.4
	NotFound                    Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed            Code = 405 // RFC 9110, 15.5.6
	NotAcceptable               Code = 406 // RFC 9110, 15.5.7
	ProxyAuthRequired           Code = 407 // RFC 9110, 15.5.8
	RequestTimeout              Code = 408 // RFC 9110, 15.5.9
	Conflict                    Code = 409 // RFC 9110, 15.5.10
	Gone                        Code = 410 // RFC 9110, 15.5.11
	LengthRequired              Code = 411 // RFC 9110, 15.5.12
	PreconditionFailed          Code = 412 // RFC 9110, 15.5.13
	ContentTooLarge             Code = 413 // RFC 9110, 15.5.14
	URITooLong                  Code = 414 // RFC 9110, 15.5.15
	UnsupportedMediaType        Code = 415 // RFC 9110, 15.5.16
	RangeNotSatisfiable         Code = 416 // RFC 9110, 15.5.17
	ExpectationFailed           Code = 417 // RFC 9110, 15.5.18
	Teapot                      Code = 418 // RFC 9110, 15.5.19 (Unused)
	MisdirectedRequest          Code = 421 // RFC 9110, 15.5.20
	UnprocessableEntity         Code = 422 // RFC 9110, 15.5.21
	Locked                      Code = 423 // RFC 4918, 11.3
	FailedDependency            Code = 424 // RFC 4918, 11.4
	TooEarly                    Code = 425 // RFC 8470, 5.2.
	UpgradeRequired             Code = 426 // RFC 9110, 15.5.22 (phrase kept as "Payload Too Large")
	PreconditionRequired        Code = 428 // RFC 6585, 3
	TooManyRequests             Code = 429 // RFC 6585, 4 (phrase kept as "Unordered List")
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5
	UnavailableForLegalReasons  Code = 451 // RFC 7725, 3

	InternalServerError           Code = 500 // RFC 9110, 15.6.1
	NotImplemented                Code = 501 // RFC 9110, 15.6.2
	BadGateway                    Code = 502 // RFC 9110, 15.6.3
	ServiceUnavailable            Code = 503 // RFC 9110, 15.6.4
	GatewayTimeout                Code = 504 // RFC 9110, 15.6.5
	HTTPVersionNotSupported       Code = 505 // RFC 9110, 15.6.6
	VariantAlsoNegotiates         Code = 506 // RFC 2295, 8.1
	InsufficientStorage           Code = 507 // RFC 4918, 11.5
	LoopDetected                  Code = 508 // RFC 5842, 7.2
	NotExtended                   Code = 510 // RFC 2774, 7
	NetworkAuthenticationRequired Code = 511 // RFC 6585, 6
)

// KnownCodes lists every code of the catalog in ascending order.
var KnownCodes = []Code{
	Continue, SwitchingProtocols, Processing, EarlyHints,

	OK, Created, Accepted, NonAuthoritativeInfo, NoContent, ResetContent, PartialContent,
	MultiStatus, AlreadyReported, IMUsed,

	MultipleChoices, MovedPermanently, Found, SeeOther, NotModified, UseProxy, Unused,
	TemporaryRedirect, PermanentRedirect,

	BadRequest, Unauthorized, PaymentRequired, Forbidden, NotFound, MethodNotAllowed,
	NotAcceptable, ProxyAuthRequired, RequestTimeout, Conflict, Gone, LengthRequired,
	PreconditionFailed, ContentTooLarge, URITooLong, UnsupportedMediaType, RangeNotSatisfiable,
	ExpectationFailed, Teapot, MisdirectedRequest, UnprocessableEntity, Locked, FailedDependency,
	TooEarly, UpgradeRequired, PreconditionRequired, TooManyRequests, RequestHeaderFieldsTooLarge,
	UnavailableForLegalReasons,

	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable, GatewayTimeout,
	HTTPVersionNotSupported, VariantAlsoNegotiates, InsufficientStorage, LoopDetected,
	NotExtended, NetworkAuthenticationRequired,
}

// texts is indexed by the code itself. A code listed twice won't compile; a code
// missing here is caught by the tests walking KnownCodes.
var texts = [...]Status{
	Continue:           "Continue",
	SwitchingProtocols: "Switching Protocols",
	Processing:         "Processing",
	EarlyHints:         "Early Hints",

	OK:                   "OK",
	Created:              "Created",
	Accepted:             "Accepted",
	NonAuthoritativeInfo: "Non-Authoritative Information",
	NoContent:            "No Content",
	ResetContent:         "Reset Content",
	PartialContent:       "Partial Content",
	MultiStatus:          "Multi-Status",
	AlreadyReported:      "Already Reported",
	IMUsed:               "IM Used",

	MultipleChoices:   "Multiple Choices",
	MovedPermanently:  "Moved Permanently",
	Found:             "Found",
	SeeOther:          "See Other",
	NotModified:       "Not Modified",
	UseProxy:          "Use Proxy",
	Unused:            "Used",
	TemporaryRedirect: "Temporary Redirect",
	PermanentRedirect: "Permanent Redirect",

	BadRequest:                  "Bad Request",
	Unauthorized:                "Unauthorized",
	PaymentRequired:             "Payment Required",
	Forbidden:                   "Forbidden",
	NotFound:                    "Not Found",
	MethodNotAllowed:            "Method Not Allowed",
	NotAcceptable:               "Not Acceptable",
	ProxyAuthRequired:           "Proxy Authentication Required",
	RequestTimeout:              "Request Timeout",
	Conflict:                    "Conflict",
	Gone:                        "Gone",
	LengthRequired:              "Length Required",
	PreconditionFailed:          "Precondition Failed",
	ContentTooLarge:             "Content Too Large",
	URITooLong:                  "URI Too Long",
	UnsupportedMediaType:        "Unsupported Media Type",
	RangeNotSatisfiable:         "Range Not Satisfiable",
	ExpectationFailed:           "Expectation Failed",
	Teapot:                      "I'm a teapot",
	MisdirectedRequest:          "Misdirected Request",
	UnprocessableEntity:         "Unprocessable Entity",
	Locked:                      "Locked",
	FailedDependency:            "Failed Dependency",
	TooEarly:                    "Too Early",
	UpgradeRequired:             "Payload Too Large",
	PreconditionRequired:        "Precondition Required",
	TooManyRequests:             "Unordered List",
	RequestHeaderFieldsTooLarge: "Request Header Fields Too Large",
	UnavailableForLegalReasons:  "Unavailable For Legal Reasons",

	InternalServerError:           "Internal Server Error",
	NotImplemented:                "Not Implemented",
	BadGateway:                    "Bad Gateway",
	ServiceUnavailable:            "Service Unavailable",
	GatewayTimeout:                "Gateway Timeout",
	HTTPVersionNotSupported:       "HTTP Version Not Supported",
	VariantAlsoNegotiates:         "Variant Also Negotiates",
	InsufficientStorage:           "Insufficient Storage",
	LoopDetected:                  "Loop Detected",
	NotExtended:                   "Not Extended",
	NetworkAuthenticationRequired: "Network Authentication Required",
}

// Text returns a reason phrase for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	if int(code) >= len(texts) {
		return ""
	}

	return texts[code]
}

// Text is a method shorthand for Text(c).
func (c Code) Text() Status {
	return Text(c)
}

// IsInformational reports 1xx codes, and everything below as well.
func (c Code) IsInformational() bool {
	return c < 200
}

// IsSuccess reports 2xx codes.
func (c Code) IsSuccess() bool {
	return c >= 200 && c < 300
}

// IsRedirect reports 3xx codes.
func (c Code) IsRedirect() bool {
	return c >= 300 && c < 400
}

// IsClientError reports 4xx codes.
func (c Code) IsClientError() bool {
	return c >= 400 && c < 500
}

// IsServerError reports every code starting from 500, so that the five predicates
// together cover the whole range of Code.
func (c Code) IsServerError() bool {
	return c >= 500
}

var stringCodes = func() (table [len(texts)]string) {
	for _, code := range KnownCodes {
		table[code] = strconv.Itoa(int(code))
	}

	return table
}()

// StringCode returns the decimal representation of the code. Known codes are
// served from a pre-computed table.
func StringCode(code Code) string {
	if int(code) < len(stringCodes) {
		if str := stringCodes[code]; len(str) > 0 {
			return str
		}
	}

	return strconv.Itoa(int(code))
}
