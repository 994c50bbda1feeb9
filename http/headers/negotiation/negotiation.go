// Package negotiation holds the names of header fields a client uses to
// tell its preferences about the representation.
package negotiation

const (
	// Accept lists the media types the client is able to understand.
	Accept = "Accept"
	// AcceptEncoding lists the content codings, usually compression, the client can decode.
	AcceptEncoding = "Accept-Encoding"
	// AcceptCharset is deprecated by RFC 9110, 12.5.2, yet still sent by some clients.
	AcceptCharset = "Accept-Charset"
	// AcceptLanguage lists the natural languages and locales the client prefers.
	AcceptLanguage = "Accept-Language"
)
