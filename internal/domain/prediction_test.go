package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevelFor_Boundaries(t *testing.T) {
	assert.Equal(t, RiskLow, RiskLevelFor(0.0))
	assert.Equal(t, RiskLow, RiskLevelFor(0.2999))
	assert.Equal(t, RiskMedium, RiskLevelFor(0.3))
	assert.Equal(t, RiskMedium, RiskLevelFor(0.6999))
	assert.Equal(t, RiskHigh, RiskLevelFor(0.7))
	assert.Equal(t, RiskHigh, RiskLevelFor(1.0))
}
