// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package siteconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"shipfree/web"
)

// Parse decodes a site configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse site config: %w", err)
	}
	return &cfg, nil
}

// Load reads and decodes the site configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config: %w", err)
	}
	return Parse(data)
}

// Default returns the configuration embedded in the binary.
func Default() (*Config, error) {
	return Parse(web.SiteConfigJSON)
}

// LoadOrDefault loads path when it is set and falls back to the embedded
// configuration otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
