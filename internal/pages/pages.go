// Package pages renders the HTML documents the server produces by itself: error pages and the
// dynamic endpoints. All the interpolated values are HTML-escaped.
package pages

import (
	"bytes"
	"html/template"

	"github.com/indigo-web/webserv/http/status"
)

var errorPage = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Error {{.Code}}</title>
    <style>
        body { font-family: Arial; text-align: center; padding: 50px; }
        h1 { color: #e74c3c; }
    </style>
</head>
<body>
    <h1>Error {{.Code}}</h1>
    <p>{{.Message}}</p>
</body>
</html>`))

var helloPage = template.Must(template.New("hello").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Hello</title></head>
<body style="font-family: Arial; text-align: center; padding: 50px;">
<h1>Hello, {{.}}!</h1>
<p>Query parameters were received.</p>
<a href="/">Back to the home page</a>
</body>
</html>`))

var testPage = template.Must(template.New("test").Parse(`<!DOCTYPE html>
<html>
<body>
<h1>Test OK</h1>
<p>Parameters received: {{.}}</p>
</body>
</html>`))

var postPage = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>POST received</title></head>
<body style="font-family: Arial; padding: 50px; background: #f0f8ff;">
<h1 style="color: #28a745;">Form received successfully</h1>
<div style="background: white; padding: 20px; border-radius: 10px;">
<h2>Received data:</h2>
<pre style="background: #f5f5f5; padding: 15px;">{{.Body}}</pre>
<p><strong>Content-Type:</strong> {{.ContentType}}</p>
<p><strong>Size:</strong> {{.Length}} bytes</p>
</div>
<a href="/">Back to the home page</a>
</body>
</html>`))

// ErrorMessage returns the human-readable explanation of the code, shown on error pages.
func ErrorMessage(code status.Code) string {
	switch code {
	case status.NotFound:
		return "Page not found"
	case status.BadRequest:
		return "Invalid request"
	case status.InternalServerError:
		return "Internal server error"
	default:
		return "Error"
	}
}

// Error renders the error page for the code.
func Error(code status.Code) []byte {
	return render(errorPage, struct {
		Code    status.Code
		Message string
	}{code, ErrorMessage(code)})
}

// Hello renders the greeting page.
func Hello(name string) []byte {
	return render(helloPage, name)
}

// Test renders the page reporting how many query parameters were received.
func Test(params int) []byte {
	return render(testPage, params)
}

// Post renders the page echoing the request body back.
func Post(body []byte, contentType string) []byte {
	data := struct {
		Body, ContentType string
		Length            int
	}{
		Body:        string(body),
		ContentType: contentType,
		Length:      len(body),
	}

	if len(body) == 0 {
		data.Body = "(empty)"
	}

	if len(contentType) == 0 {
		data.ContentType = "not specified"
	}

	return render(postPage, data)
}

func render(tmpl *template.Template, data any) []byte {
	var buff bytes.Buffer
	if err := tmpl.Execute(&buff, data); err != nil {
		// templates are static and fed with plain values only
		panic(err)
	}

	return buff.Bytes()
}
