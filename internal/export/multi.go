package export

import (
	"fmt"
	"os"
	"path/filepath"

	"RasterVector/internal/document"
)

const multiBaseName = "imagemulti"

// multiNames returns the paired export file names for an index.
func multiNames(dir string, num int) (pngPath, svgPath string) {
	pngPath = filepath.Join(dir, fmt.Sprintf("%s.%04d.png", multiBaseName, num))
	svgPath = filepath.Join(dir, fmt.Sprintf("%s.%04d.svg", multiBaseName, num))
	return
}

// NextMultiIndex probes for the first index whose PNG and SVG names are
// both unused.
func NextMultiIndex(dir string) int {
	for num := 1; ; num++ {
		pngPath, svgPath := multiNames(dir, num)
		if !fileExists(pngPath) && !fileExists(svgPath) {
			return num
		}
	}
}

// Multi writes the auto-numbered raster/vector pair into dir. Returns the
// chosen index, or written=false when the canvas is empty.
func Multi(doc *document.Document, dir string) (num int, written bool, err error) {
	num = NextMultiIndex(dir)
	pngPath, svgPath := multiNames(dir, num)

	written, err = PNG(doc, pngPath)
	if err != nil || !written {
		return num, written, err
	}
	if _, err = SVG(doc, svgPath); err != nil {
		return num, false, err
	}
	return num, true, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
