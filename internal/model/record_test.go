package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source Source
		want   string
	}{
		{SourceReal, "REAL"},
		{SourceSynthetic, "SYNTHETIC"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, string(tt.source))
		})
	}
}

func TestDomainValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "accidents", string(DomainAccidents))
	assert.Equal(t, "crimes", string(DomainCrimes))
}

func TestCombinedTypeValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ACCIDENT", string(CombinedAccident))
	assert.Equal(t, "CRIME", string(CombinedCrime))
}
