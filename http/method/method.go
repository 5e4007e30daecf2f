package method

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
)

// List contains all the supported HTTP methods.
var List = []Method{GET, POST}

// Parse maps a request-line token to the method. Anything the server does not serve is
// Unknown. Tokens are case-sensitive.
func Parse(str string) Method {
	switch str {
	case "GET":
		return GET
	case "POST":
		return POST
	default:
		return Unknown
	}
}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	default:
		return "Unknown"
	}
}
