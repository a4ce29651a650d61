//go:build !polydebug

package poly

const debugInvariants = false
