package status

import "strconv"

type (
	Code   uint16
	Status string
)

// HTTP status codes the server produces.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK                  Code = 200 // RFC 9110, 15.3.1
	BadRequest          Code = 400 // RFC 9110, 15.5.1
	NotFound            Code = 404 // RFC 9110, 15.5.5
	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

// KnownCodes lists every code having its own reason phrase.
var KnownCodes = []Code{OK, BadRequest, NotFound, InternalServerError}

// Text returns the reason phrase for the code. Codes outside the KnownCodes are all
// reported as "Unknown".
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown"
	}
}

// StringCode returns the decimal representation of the code.
func StringCode(code Code) string {
	return strconv.Itoa(int(code))
}
