// Package types defines the tea-variety entity, the generic DataService
// contract, the result envelope exchanged by the enveloped REST backend,
// and the standard errors shared by every backend.
package types
