package blend

import (
	"blend/core"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *core.InterestRateConfig {
	return &core.InterestRateConfig{
		TargetUtilization:    big.NewInt(7_500_000),
		RBase:                big.NewInt(100_000),
		ROne:                 big.NewInt(500_000),
		RTwo:                 big.NewInt(5_000_000),
		RThree:               big.NewInt(15_000_000),
		Reactivity:           big.NewInt(200),
		InterestRateModifier: big.NewInt(10_000_000),
	}
}

func mustRate(t *testing.T, util int64, cfg *core.InterestRateConfig) int64 {
	t.Helper()
	rate, err := CalcKinkedInterestRate(big.NewInt(util), cfg)
	require.NoError(t, err)
	return rate.Int64()
}

func TestCalcKinkedInterestRate(t *testing.T) {
	cfg := testConfig()

	cases := map[string]struct {
		util int64
		rate int64
	}{
		"zero utilization": {util: 0, rate: 100_000},
		"first slope":      {util: 3_750_000, rate: 350_000},
		"at target":        {util: 7_500_000, rate: 600_000},
		"second slope":     {util: 8_500_000, rate: 3_100_000},
		"at emergency":     {util: 9_500_000, rate: 5_600_000},
		"third slope":      {util: 9_750_000, rate: 13_100_000},
		"full":             {util: 10_000_000, rate: 20_600_000},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.rate, mustRate(t, c.util, cfg))
		})
	}
}

func TestCalcKinkedInterestRateModifier(t *testing.T) {
	cfg := testConfig()
	cfg.InterestRateModifier = big.NewInt(20_000_000)

	// zero utilization is r_base * ir_mod
	assert.Equal(t, int64(200_000), mustRate(t, 0, cfg))
	assert.Equal(t, int64(1_200_000), mustRate(t, 7_500_000, cfg))
	// the emergency slope is not scaled by the modifier
	assert.Equal(t, int64(15_000_000+11_200_000), mustRate(t, 10_000_000, cfg))
}

func TestCalcKinkedInterestRateMonotonic(t *testing.T) {
	for _, mod := range []int64{10_000_000, 15_555_555, 42_000_000} {
		cfg := testConfig()
		cfg.InterestRateModifier = big.NewInt(mod)

		prev := int64(-1)
		for u := int64(0); u <= 10_000_000; u += 2_500 {
			rate := mustRate(t, u, cfg)
			require.GreaterOrEqual(t, rate, prev, "modifier %d utilization %d", mod, u)
			prev = rate
		}
	}
}

func TestCalcKinkedInterestRateContinuity(t *testing.T) {
	cfg := testConfig()

	for _, kink := range []int64{7_500_000, 9_500_000} {
		below := mustRate(t, kink-1, cfg)
		above := mustRate(t, kink+1, cfg)
		assert.InDelta(t, below, above, 100, "kink %d", kink)
	}
}

func TestCalcKinkedInterestRateCeiling(t *testing.T) {
	cfg := testConfig()
	cfg.RThree = big.NewInt(2_000_000_000)

	assert.Equal(t, MaxAPR.Int64(), mustRate(t, 10_000_000, cfg))
	assert.Equal(t, int64(5_600_000), mustRate(t, 9_500_000, cfg))
}

func TestCalcKinkedInterestRateInvalid(t *testing.T) {
	cfg := testConfig()

	for _, u := range []int64{-1, 10_000_001} {
		_, err := CalcKinkedInterestRate(big.NewInt(u), cfg)
		assert.ErrorIs(t, err, core.ErrInvalidUtilization)
	}

	_, err := CalcKinkedInterestRate(nil, cfg)
	assert.ErrorIs(t, err, core.ErrInvalidUtilization)

	cfg.TargetUtilization = big.NewInt(0)
	_, err = CalcKinkedInterestRate(big.NewInt(5_000_000), cfg)
	assert.ErrorIs(t, err, core.ErrInvalidRateConfig)
}

func TestCalcBorrowAPR(t *testing.T) {
	assert.Equal(t, int64(1_000_000), CalcBorrowAPR(big.NewInt(1_000_000)).Int64())
	assert.Equal(t, MaxAPR.Int64(), CalcBorrowAPR(big.NewInt(200_000_000)).Int64())
	assert.Equal(t, int64(0), CalcBorrowAPR(big.NewInt(-5)).Int64())
}
