// Package web embeds the single-page dashboard frontend.
package web

import "embed"

//go:embed index.html
var FS embed.FS
