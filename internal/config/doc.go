// Package config assembles the configuration of the emissor-data component
// from declarative modules.
//
// A module is a YAML document holding an ordered list of named settings and
// an ordered list of includes. [Loader.Load] resolves the entry-point
// module's settings first, applies each include in declared order, and
// merges everything with first-definition-wins semantics: the entry point
// and earlier includes take precedence over later includes. Setting
// defaults may interpolate already-resolved settings with {name}
// references.
//
// External overrides enter through an explicit [Input], command-line
// flags, or environment variables, in that priority order. The main entry
// point is [GetServiceConfig], which returns the validated typed view used
// by the service.
package config
