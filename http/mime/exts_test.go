package mime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		for _, tc := range []struct {
			Path string
			Want MIME
		}{
			{"/index.html", HTML},
			{"/old.htm", HTML},
			{"/style.css", CSS},
			{"/app.min.js", JS},
			{"/data.json", JSON},
			{"/logo.png", PNG},
			{"/photo.jpg", JPEG},
			{"/photo.jpeg", JPEG},
			{"/anim.gif", GIF},
			{"/robots.txt", Plain},
		} {
			require.Equal(t, tc.Want, Resolve(tc.Path), tc.Path)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		for _, path := range []string{
			"/", "/README", "/archive.tar", "/INDEX.HTML", "/dir.html/file", "/trailing.",
		} {
			require.Equal(t, OctetStream, Resolve(path), path)
		}
	})
}
