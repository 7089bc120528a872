// Package web embeds the static landing page served under /static/.
package web

import "embed"

// FS holds the static/ directory; paths inside it start with "static/".
//
//go:embed static
var FS embed.FS
