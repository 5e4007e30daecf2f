package inbuilt

import (
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/method"
)

// Get is a shortcut for registering GET-requests.
func (r *Router) Get(path string, handler Handler, middlewares ...Middleware) *Router {
	return r.Route(method.GET, path, handler, middlewares...)
}

// Post is a shortcut for registering POST-requests.
func (r *Router) Post(path string, handler Handler, middlewares ...Middleware) *Router {
	return r.Route(method.POST, path, handler, middlewares...)
}

// File is a shortcut handler for single file endpoints.
func File(filename string) Handler {
	return func(request *http.Request) *http.Response {
		return http.File(request, filename)
	}
}

// Static serves the request path from the content root.
func Static(request *http.Request) *http.Response {
	return http.File(request, request.Path)
}
