package inbuilt

import (
	"strings"

	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/router"
)

var _ router.Router = new(Router)

type route struct {
	path    string
	prefix  bool
	handler Handler
}

func (r route) match(path string) bool {
	if r.prefix {
		return strings.HasPrefix(path, r.path)
	}

	return path == r.path
}

type methodRoutes struct {
	routes   []route
	fallback Handler
}

// Router is a built-in implementation of router.Router interface. Routes are kept per method
// and matched in order they were registered in. The first matching route wins, and if none
// matched, the method's fallback handler is called. Requests of methods having neither routes
// nor fallback are rejected with status.ErrUnsupportedMethod.
type Router struct {
	methods     map[method.Method]*methodRoutes
	middlewares []Middleware
}

// New constructs a new instance of inbuilt router
func New() *Router {
	return &Router{
		methods: make(map[method.Method]*methodRoutes),
	}
}

// OnRequest routes the request.
func (r *Router) OnRequest(request *http.Request) *http.Response {
	routes, found := r.methods[request.Method]
	if !found {
		return r.OnError(request, status.ErrUnsupportedMethod)
	}

	for _, rt := range routes.routes {
		if rt.match(request.Path) {
			return notNil(request, rt.handler(request))
		}
	}

	if routes.fallback == nil {
		return r.OnError(request, status.ErrNotFound)
	}

	return notNil(request, routes.fallback(request))
}

// OnError renders an error page for the error.
func (r *Router) OnError(request *http.Request, err error) *http.Response {
	return http.Error(request, err)
}

func (r *Router) entry(m method.Method) *methodRoutes {
	routes, found := r.methods[m]
	if !found {
		routes = new(methodRoutes)
		r.methods[m] = routes
	}

	return routes
}

func notNil(request *http.Request, response *http.Response) *http.Response {
	if response != nil {
		return response
	}

	return http.Respond(request)
}
