// Package web carries html templates of the pages
package web

import "embed"

// Templates holds layout and page templates
//
//go:embed templates/*.html
var Templates embed.FS
