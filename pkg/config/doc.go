// Package config defines Callisto's configuration model and YAML loading.
//
// Configuration is split into sections mirroring the runtime components:
// format (layout cost model and search budget), logging, metrics, cache and
// watch. Loading applies defaults first, then file values, then CALLISTO_*
// environment overrides, and validates the final result.
//
// # Example
//
//	format:
//	  max_width: 100
//	  indent_width: 4
//	logging:
//	  level: info
//	  format: text
//	cache:
//	  enabled: true
//	  backend: sqlite
//	  path: .callisto/cache.db
package config
