// Package primekit holds module-level metadata shared by the CLI and tests.
package primekit

// Version is the primekit module version, bumped on release.
const Version = "0.1.0"
