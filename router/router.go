package router

import "github.com/indigo-web/webserv/http"

// Router decides what to respond. OnRequest is called for every successfully parsed request,
// OnError for requests that failed to parse.
type Router interface {
	OnRequest(request *http.Request) *http.Response
	OnError(request *http.Request, err error) *http.Response
}
