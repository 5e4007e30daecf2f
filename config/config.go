package config

import (
	"time"
)

type (
	URI struct {
		// MethodLength is the maximal length of the request method token.
		MethodLength int
		// RequestTargetLength limits the path together with the query string. A longer request
		// target is rejected rather than truncated.
		RequestTargetLength int
		// ProtoLength is the maximal length of the protocol token.
		ProtoLength int
		// MaxParams is the number of query parameters kept per request. Pairs after it are
		// silently discarded.
		MaxParams int
		// DefaultDocument replaces the request path when it is exactly "/".
		DefaultDocument string
	}

	Headers struct {
		// Server is the value of the Server header attached to every response.
		Server string
		// MaxContentTypeLength is the longest Content-Type value stored. Longer values are
		// ignored, leaving the request without a content type.
		MaxContentTypeLength int
	}

	Body struct {
		// MaxSize is the capacity of the request body. Everything beyond it is dropped
		// without an error.
		MaxSize int
	}

	Static struct {
		// Root is the directory static files are served from.
		Root string
	}

	NET struct {
		// ReadBufferSize is the size of the single read performed on every connection. The
		// request must fit into it, the rest is never read.
		ReadBufferSize int
		// ReadTimeout limits how long a connection may stay silent before being dropped.
		// Zero disables the deadline.
		ReadTimeout time.Duration `test:"nullable"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
		// WriteBufferSize is the initial capacity of the buffer the response headers are
		// rendered into.
		WriteBufferSize int
	}
)

// Config holds settings used across the server, mainly restrictions, limitations and
// pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	URI     URI
	Headers Headers
	Body    Body
	Static  Static
	NET     NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		URI: URI{
			MethodLength:        15,
			RequestTargetLength: 511,
			ProtoLength:         15,
			MaxParams:           20,
			DefaultDocument:     "/index.html",
		},
		Headers: Headers{
			Server:               "WebServ/1.0",
			MaxContentTypeLength: 127,
		},
		Body: Body{
			MaxSize: 4 * 1024,
		},
		Static: Static{
			Root: "www",
		},
		NET: NET{
			ReadBufferSize:            4 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
			WriteBufferSize:           512,
		},
	}
}
