// Package unittest holds helpers shared by the test suites: fixtures, a
// flag-gated test logger and a counting metrics collector.
package unittest

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// KeyFixture returns a random 16-byte hex string usable as a cache key.
func KeyFixture() string {
	b := make([]byte, 16)
	_, err := rand.Read(b)
	if err != nil {
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return hex.EncodeToString(b)
}

// KeyFixtures returns n distinct random keys.
func KeyFixtures(n int) []string {
	keys := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(keys) < n {
		k := KeyFixture()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// ValueFixtures returns n values 0..n-1, handy where tests only need
// distinguishable payloads.
func ValueFixtures(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}
