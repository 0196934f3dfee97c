// Package common holds small helpers shared across client packages.
package common

// WipeByteArray zeroes a sensitive buffer (passwords) once it is no longer
// needed. Nil-safe.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
