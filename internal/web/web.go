// Package web embeds the static landing page assets.
package web

import "embed"

// Static holds the landing page files, addressable under static/.
//
//go:embed static
var Static embed.FS
