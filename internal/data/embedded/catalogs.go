// Package embedded provides access to data files compiled into the DoxHub binary.
package embedded

import _ "embed"

// CatalogData contains the embedded default OSINT catalog YAML data.
//
//go:embed catalog.yaml
var CatalogData []byte

// ChangelogData contains the embedded release history YAML data.
//
//go:embed changelog.yaml
var ChangelogData []byte
