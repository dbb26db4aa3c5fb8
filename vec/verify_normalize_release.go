//go:build !vec_verify

package vec

// Empty stub that will be optimized out
func verifyNormalized(in, out Vec3) {}
