package response

import (
	"github.com/indigo-web/webserv/http/mime"
	"github.com/indigo-web/webserv/http/status"
)

const DefaultContentType = mime.HTML

// Fields is everything a response is serialized from. The reason phrase isn't stored, as it is
// always derived from the code.
type Fields struct {
	ContentType mime.MIME
	Body        []byte
	Code        status.Code
}

func (f *Fields) Clear() {
	f.Code = status.OK
	f.ContentType = DefaultContentType
	f.Body = nil
}
