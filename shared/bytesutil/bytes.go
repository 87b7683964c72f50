// Package bytesutil defines helper methods for converting between
// byte slices and the fixed-size arrays used throughout the beacon chain.
package bytesutil

// ToBytes32 is a convenience method for converting a byte slice to a fix
// sized 32 byte array. This method will truncate the input if it is larger
// than 32 bytes.
func ToBytes32(x []byte) [32]byte {
	var y [32]byte
	copy(y[:], x)
	return y
}

// Trunc truncates the byte slices to 6 bytes. It is primarily used to
// shorten roots and signatures for logging.
func Trunc(x []byte) []byte {
	if len(x) > 6 {
		return x[:6]
	}
	return x
}
