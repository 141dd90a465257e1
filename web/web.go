// Package web holds the HTML templates served by the drill pages.
package web

import "embed"

//go:embed templates
var Templates embed.FS
