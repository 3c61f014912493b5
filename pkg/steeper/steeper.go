// Package steeper exposes module-level metadata.
package steeper

// Version is the released version of the steeper module.
const Version = "v0.1.0"
