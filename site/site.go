// Package site holds the fixed routing table of the server: a few dynamic pages, a JSON
// endpoint and static files for everything else.
package site

import (
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/internal/pages"
	"github.com/indigo-web/webserv/router/inbuilt"
	"github.com/indigo-web/webserv/router/inbuilt/middleware"
)

const DefaultName = "Guest"

// Status is the body of the JSON endpoint.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Params  int    `json:"params"`
}

// New returns the router serving the site. GET requests are matched against the dynamic pages
// first and fall back to static files, while POST requests on any path are echoed back.
func New() *inbuilt.Router {
	return inbuilt.New().
		Use(middleware.Recover).
		Catch(method.GET, "/hello", Hello).
		Catch(method.GET, "/test", Test).
		Catch(method.GET, "/api", API).
		Get("/submit", API).
		Fallback(method.GET, inbuilt.Static).
		Fallback(method.POST, Echo)
}

// Hello greets whoever is passed in the name parameter.
func Hello(request *http.Request) *http.Response {
	name := request.Params.ValueOr("name", DefaultName)
	return http.Bytes(request, pages.Hello(name))
}

// Test reports how many query parameters were received.
func Test(request *http.Request) *http.Response {
	return http.Bytes(request, pages.Test(request.Params.Len()))
}

// API responds with a constant JSON document, embedding only the parameters count.
func API(request *http.Request) *http.Response {
	return http.JSON(request, Status{
		Status:  "ok",
		Message: "GET request",
		Params:  request.Params.Len(),
	})
}

// Echo renders the received body and its content type.
func Echo(request *http.Request) *http.Response {
	return http.Bytes(request, pages.Post(request.Body, request.ContentType))
}
