package middleware

import (
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/router/inbuilt"
)

var _ inbuilt.Middleware = Recover

// Recover is a basic middleware that catches any panics, and returns 500 Internal Server Error
// instead. Everything the handler did to the response is discarded, avoiding half-cooked
// response being sent
func Recover(next inbuilt.Handler, request *http.Request) (response *http.Response) {
	defer func() {
		if r := recover(); r != nil {
			response = http.Error(request, status.ErrInternalServerError)
		}
	}()

	return next(request)
}
