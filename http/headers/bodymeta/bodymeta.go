// Package bodymeta holds the names of header fields describing the message body.
package bodymeta

const (
	// ContentType is the media type of the body before any content coding is applied.
	ContentType = "Content-Type"
	// ContentLength is the body size in bytes.
	ContentLength = "Content-Length"
	// ContentLanguage is the natural language(s) of the intended audience.
	ContentLanguage = "Content-Language"
	// ContentDisposition tells whether the body is displayed inline or downloaded as an attachment.
	ContentDisposition = "Content-Disposition"
	// ContentEncoding lists the codings applied to the body, in the order of application.
	ContentEncoding = "Content-Encoding"
)
