package rendering

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	interTagSpace  = regexp.MustCompile(`>\s+<`)
)

// minifyHTML collapses whitespace runs and inter-tag whitespace. It is a
// byte-size optimization, not a full HTML minifier.
func minifyHTML(html string) string {
	out := whitespaceRuns.ReplaceAllString(html, " ")
	out = interTagSpace.ReplaceAllString(out, "><")
	return strings.TrimSpace(out)
}

// checksum computes a simple rolling hash over the rendered content. Its
// only job is cheap change detection: identical inputs yield identical
// checksums.
func checksum(content string) string {
	var hash uint32 = 5381
	for i := 0; i < len(content); i++ {
		hash = hash*33 + uint32(content[i])
	}
	return fmt.Sprintf("%08x", hash)
}
