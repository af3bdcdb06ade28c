package naming

import (
	"path/filepath"
	"strings"
)

// OutputPath joins a generated name and an extension under dir. ext may be
// given with or without its leading dot; an empty ext leaves the name bare.
//
//	OutputPath("out", "STOCK_GETTY_1029_happy-skin", "mp4") → out/STOCK_GETTY_1029_happy-skin.mp4
func OutputPath(dir, name, ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	file := name
	if ext != "" {
		file += "." + ext
	}
	if dir == "" {
		return file
	}
	return filepath.Join(dir, file)
}
