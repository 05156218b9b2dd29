// Package config binds the process's runtime settings through viper,
// the way cmd/cayley/command/database.go defines Key* constants for
// store/load settings bindable from a config file, environment, or
// flags — here scoped to the schema namespace and load defaults this
// system needs instead of a storage backend selection.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Key* name the settings this module reads, mirroring
// cmd/cayley/command/database.go's KeyBackend/KeyAddress/KeyOptions
// convention.
const (
	KeyMapPrefix = "schema.map_prefix"
	KeySchemaSet = "schema.set"
	KeyLoadBatch = "load.batch"
	KeyFieldsNS  = "schema.fields_namespace"
	KeyMappingNS = "schema.mapping_namespace"
	KeySourceNS  = "schema.source_namespace"
)

// Defaults matches spec §6's fixed namespace conventions.
const (
	DefaultMapPrefix = "http://arga.org.au/schemas/mapping/"
	DefaultFieldsNS  = "http://arga.org.au/schemas/fields/"
	DefaultMappingNS = "http://arga.org.au/schemas/mapping/"
	DefaultSourceNS  = "http://arga.org.au/schemas/source/"
	DefaultLoadBatch = 1000
)

// New returns a viper instance pre-populated with this module's
// defaults, reading ARGATRANSFORM_-prefixed environment overrides
// (e.g. ARGATRANSFORM_SCHEMA_MAP_PREFIX).
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMapPrefix, DefaultMapPrefix)
	v.SetDefault(KeyFieldsNS, DefaultFieldsNS)
	v.SetDefault(KeyMappingNS, DefaultMappingNS)
	v.SetDefault(KeySourceNS, DefaultSourceNS)
	v.SetDefault(KeySchemaSet, "default")
	v.SetDefault(KeyLoadBatch, DefaultLoadBatch)

	v.SetEnvPrefix("argatransform")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
