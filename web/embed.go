// Package web provides the assets embedded in the binaries. The default site
// configuration ships here so the server and tools run without a config file.
package web

import _ "embed"

// SiteConfigJSON is the stock ShipFree site configuration document.
//
//go:embed site-config.json
var SiteConfigJSON []byte
