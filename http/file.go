package http

import (
	"os"
	"path"
	"path/filepath"

	"github.com/indigo-web/webserv/http/mime"
	"github.com/indigo-web/webserv/http/status"
)

// TryFile reads the file at the request path under the root and returns a new Response with it
// as a body. The path is cleaned as a rooted one first, so it can never point above the root.
//
// A path which doesn't exist or isn't a regular file results in status.ErrNotFound. A file that
// exists but can't be read results in status.ErrInternalServerError.
func (r *Response) TryFile(root, requestPath string) (*Response, error) {
	filename := filepath.Join(root, filepath.FromSlash(path.Clean("/"+requestPath)))

	stat, err := os.Stat(filename)
	if err != nil || !stat.Mode().IsRegular() {
		return r, status.ErrNotFound
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return r, status.ErrInternalServerError
	}

	return r.
		Code(status.OK).
		ContentType(mime.Resolve(requestPath)).
		Bytes(content), nil
}

// File does the same as TryFile does, except returned error is being implicitly wrapped
// by Error
func (r *Response) File(root, requestPath string) *Response {
	resp, err := r.TryFile(root, requestPath)
	if err != nil {
		return r.Error(err)
	}

	return resp
}
