//go:build dev

package resources

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"
)

// getStaticDir derives the absolute path to the static directory
// relative to this source file, regardless of where the binary is run from.
func getStaticDir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return StaticDirectoryPath
	}
	return filepath.Join(filepath.Dir(filename), "static")
}

// Handler returns an HTTP handler serving static files from the filesystem,
// so stylesheet edits show up without a rebuild.
func Handler() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(os.DirFS(getStaticDir()))))
}
