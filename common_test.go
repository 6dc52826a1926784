// Copyright (C) 2026. See AUTHORS.

package random

import "testing"

// lcgAdvance applies the default-parameter recurrence to seed n times,
// for checking that draws advance the state exactly once per call.
func lcgAdvance(seed int64, n int) int64 {
	for i := 0; i < n; i++ {
		seed = (defaultA*seed + defaultC) % defaultM
	}
	return seed
}

// mustPanic asserts that fn panics with ErrInvalidModulus.
func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() != ErrInvalidModulus {
			t.Fatal("expected ErrInvalidModulus panic")
		}
	}()
	fn()
}
