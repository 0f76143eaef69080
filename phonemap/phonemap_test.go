package phonemap_test

import (
	"testing"

	"github.com/katalvlaran/seqrnn/phonemap"
	"github.com/stretchr/testify/assert"
)

func TestToCMU_KnownLabel(t *testing.T) {
	cmu, ok := phonemap.ToCMU("ix")
	assert.True(t, ok)
	assert.Equal(t, "ih", cmu)
}

func TestToCMU_UnknownLabel(t *testing.T) {
	_, ok := phonemap.ToCMU("not-a-phone")
	assert.False(t, ok)
}

func TestToTIMIT_RoundTripsAKnownClass(t *testing.T) {
	timit, ok := phonemap.ToTIMIT("sil")
	assert.True(t, ok)
	cmu, ok := phonemap.ToCMU(timit)
	assert.True(t, ok)
	assert.Equal(t, "sil", cmu)
}
