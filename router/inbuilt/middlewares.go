package inbuilt

import "github.com/indigo-web/webserv/http"

type (
	Handler func(*http.Request) *http.Response
	// Middleware works like a chain of nested calls, next may be even directly
	// handler. But if we are not a closing middleware, we will call next
	// middleware that is simply a partial middleware with already provided next
	Middleware func(next Handler, request *http.Request) *http.Response
)

// Use adds middlewares applied to every handler registered after the call.
func (r *Router) Use(middlewares ...Middleware) *Router {
	r.middlewares = append(r.middlewares, middlewares...)
	return r
}

func (r *Router) compose(handler Handler, middlewares []Middleware) Handler {
	all := make([]Middleware, 0, len(r.middlewares)+len(middlewares))
	all = append(all, r.middlewares...)
	all = append(all, middlewares...)

	return compose(handler, all)
}

// compose makes a single Handler out of the chain. The first middleware is the outermost one.
func compose(handler Handler, middlewares []Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = wrap(handler, middlewares[i])
	}

	return handler
}

func wrap(next Handler, mware Middleware) Handler {
	return func(request *http.Request) *http.Response {
		return mware(next, request)
	}
}
