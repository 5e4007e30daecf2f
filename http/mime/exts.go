package mime

import "strings"

var Extension = map[string]MIME{
	".html": HTML,
	".htm":  HTML,
	".css":  CSS,
	".js":   JS,
	".json": JSON,
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".txt":  Plain,
}

// Resolve returns the MIME of a file by its extension, which is everything starting with the
// last dot of the path. The lookup is case-sensitive. Paths without a known extension are
// OctetStream.
func Resolve(path string) MIME {
	dot := strings.LastIndexByte(path, '.')
	if dot == -1 {
		return OctetStream
	}

	if mime, found := Extension[path[dot:]]; found {
		return mime
	}

	return OctetStream
}
