// Package model defines stable boundary types for presentation layers.
//
// Engine identity (fingerprints, verdicts) is unaffected by any projection.
// These structs are the only types intended for direct JSON serialization by
// consumers; field names and the hex/epoch-millis conventions are part of the
// compatibility surface.
package model
