// Package web embeds the static dashboard assets served at the site root.
package web

import "embed"

//go:embed static
var Static embed.FS
