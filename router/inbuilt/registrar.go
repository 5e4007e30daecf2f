package inbuilt

import (
	"fmt"

	"github.com/indigo-web/webserv/http/method"
)

// Route registers a handler for requests with exactly the same path.
func (r *Router) Route(m method.Method, path string, handler Handler, middlewares ...Middleware) *Router {
	r.add(m, route{
		path:    path,
		handler: r.compose(handler, middlewares),
	})

	return r
}

// Catch registers a handler for all the requests with the path starting with the prefix. A
// catcher doesn't take precedence over the routes registered earlier.
func (r *Router) Catch(m method.Method, prefix string, handler Handler, middlewares ...Middleware) *Router {
	r.add(m, route{
		path:    prefix,
		prefix:  true,
		handler: r.compose(handler, middlewares),
	})

	return r
}

// Fallback sets the handler called when no route of the method matched.
func (r *Router) Fallback(m method.Method, handler Handler, middlewares ...Middleware) *Router {
	entry := r.entry(m)
	if entry.fallback != nil {
		panic(fmt.Errorf("fallback already registered: %s", m))
	}

	entry.fallback = r.compose(handler, middlewares)
	return r
}

func (r *Router) add(m method.Method, rt route) {
	if m == method.Unknown {
		panic("cannot register a route for an unknown method")
	}

	entry := r.entry(m)
	for _, registered := range entry.routes {
		if registered.path == rt.path && registered.prefix == rt.prefix {
			panic(fmt.Errorf("route already registered: %s %s", m, rt.path))
		}
	}

	entry.routes = append(entry.routes, rt)
}
