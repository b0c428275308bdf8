// Package prefabs loads the yaml specs and tengo scripts that tune the
// game. Files are embedded for release builds; a file on disk under
// prefabs/ overrides the embedded copy so specs can be hot-reloaded.
package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var specFS embed.FS

//go:embed scripts/*.tengo
var scriptFS embed.FS

// Load reads a spec file, preferring the on-disk copy.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return specFS.ReadFile(clean)
}

// LoadScript reads a script file, preferring the on-disk copy.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scriptFS.ReadFile(clean)
}

func cleanSpecPath(path string) string {
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "prefabs/")
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "prefabs/")
	if !strings.HasPrefix(s, "scripts/") {
		s = "scripts/" + s
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
