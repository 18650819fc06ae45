package assets

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.png
var assetsFS embed.FS

// ReadSheet returns sprite sheet bytes by assets-relative name. A copy on
// disk under assets/ overrides the embedded one so sheets can be tweaked
// without rebuilding.
func ReadSheet(name string) ([]byte, error) {
	base := filepath.Base(filepath.ToSlash(name))
	if b, err := os.ReadFile(filepath.Join("assets", base)); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(base)
}

// SheetNames lists the embedded sprite sheets.
func SheetNames() []string {
	entries, err := assetsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			names = append(names, e.Name())
		}
	}
	return names
}
