package http

import (
	"net"

	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/kv"
)

type Params = *kv.Storage

// Request represents HTTP request
type Request struct {
	// Method is an enum representing the request method. Methods the server doesn't serve are
	// method.Unknown, their original token stays in MethodRaw.
	Method    method.Method
	MethodRaw string
	// Path is the request target without the query. It isn't decoded nor normalized, except that
	// "/" is replaced by the default document.
	Path string
	// RawQuery is everything after the first question mark of the request target.
	RawQuery string
	// Params are decoded query parameters in their original order.
	Params Params
	// Protocol is the protocol token as received, e.g. HTTP/1.1.
	Protocol string
	// ContentType holds the Content-Type header value. It's filled for POST requests only.
	ContentType string
	// Body is the request body, filled for POST requests only. It's truncated to the
	// configured limit.
	Body []byte
	// Remote holds the remote address.
	Remote   net.Addr
	response *Response
	cfg      *config.Config
}

func NewRequest(cfg *config.Config, response *Response, remote net.Addr, params Params) *Request {
	return &Request{
		Method:   method.Unknown,
		Params:   params,
		Remote:   remote,
		response: response,
		cfg:      cfg,
	}
}

// Respond returns Response object.
//
// WARNING: this method clears the response builder under the hood. As it is passed
// by reference, it'll be cleared EVERYWHERE along a handler
func (r *Request) Respond() *Response {
	return r.response.Clear()
}

// Target returns the path, followed by the raw query if any parameter was parsed out of it.
func (r *Request) Target() string {
	if r.Params.Empty() {
		return r.Path
	}

	return r.Path + "?" + r.RawQuery
}

// Reset the request
func (r *Request) Reset() {
	r.Method = method.Unknown
	r.MethodRaw = ""
	r.Path = ""
	r.RawQuery = ""
	r.Params.Clear()
	r.Protocol = ""
	r.ContentType = ""
	r.Body = nil
}
