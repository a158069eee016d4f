package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertAllStubsCalled fails the test if any registered stub was never hit.
func AssertAllStubsCalled(t *testing.T, mt *MockTransport) {
	t.Helper()
	for _, s := range mt.UncalledStubs() {
		assert.Fail(t, "stub never called", s)
	}
}
