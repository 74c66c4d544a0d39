package main

import (
	"path"
	"strings"
	"time"
)

const archiveTimestampLayout = "20060102_150405"

// ArchiveName builds the destination for a processed input file:
// {prefix}{basename-without-extension}_{YYYYMMDD_HHMMSS}.txt. Existing
// archive consumers depend on this exact shape.
func ArchiveName(prefix, inputName string, t time.Time) string {
	base := path.Base(inputName)
	base = strings.TrimSuffix(base, path.Ext(base))
	return prefix + base + "_" + t.Format(archiveTimestampLayout) + ".txt"
}
