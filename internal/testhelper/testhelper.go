package testhelper

// Fixture vectors with precomputed packed forms, shared across package
// tests.

var VecDummy1 = []float64{0.125, 0.25, 0.5}

var VecDummy2 = []float64{1, 2, 3}

var VecDummy3 = []float64{3.14, -2.5e1}

// Base64 of VecDummy1 packed as little-endian float32 / float64.
const (
	Base64Dummy1F32 = "AAAAPgAAgD4AAAA/"
	Base64Dummy1F64 = "AAAAAAAAwD8AAAAAAADQPwAAAAAAAOA/"
)

// Base64 of VecDummy2 and VecDummy3 packed as little-endian float32.
const (
	Base64Dummy2F32 = "AACAPwAAAEAAAEBA"
	Base64Dummy3F32 = "w/VIQAAAyME="
)
