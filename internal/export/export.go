// Package export writes the site out as static files.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/weft-ui/weft/internal/site"
)

// Export renders every page into outDir. The root page becomes
// index.html; any other page becomes <path>/index.html so plain file
// servers resolve the site's paths.
func Export(outDir string, log *slog.Logger) error {
	pages := site.Pages()

	for _, page := range pages {
		html, err := site.RenderPage(page)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		target := targetFile(outDir, page.Path)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := os.WriteFile(target, []byte(html), 0o644); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		log.Info("exported page", "page", page.Name, "file", target)
	}

	log.Info("export complete", "pages", len(pages), "dir", outDir)
	return nil
}

// targetFile maps a site path to its output file.
func targetFile(outDir, path string) string {
	if path == "/" {
		return filepath.Join(outDir, "index.html")
	}
	return filepath.Join(outDir, filepath.FromSlash(path[1:]), "index.html")
}
