// Package web embeds the browser shell: a canvas renderer plus keyboard and touch input.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var assets embed.FS

// Assets returns the browser files rooted at the static directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// static/ is embedded at build time, so this only fails on a broken build.
		panic(err)
	}
	return sub
}
