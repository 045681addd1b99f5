// Package registry is the catalog of finished op definitions for a single
// application instance.
//
// Definitions are registered once after building, keyed by op name, and then
// validated. Lookups by opref.Ref resolve either a whole op or one of its
// specializations.
package registry
