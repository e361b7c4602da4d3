package blend

import (
	"blend/core"
	"blend/pkg/fixed"
	"fmt"
	"math/big"
)

// ThreeSlopeValidationResult outcome of checking a rate curve config
type ThreeSlopeValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}

func (r *ThreeSlopeValidationResult) issue(format string, args ...interface{}) {
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
	r.IsValid = false
}

func (r *ThreeSlopeValidationResult) warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ValidateInterestRateConfig check every invariant of the rate curve config.
// Issues make the config unusable, warnings flag unusual but valid curves.
func ValidateInterestRateConfig(cfg *core.InterestRateConfig) ThreeSlopeValidationResult {
	result := ThreeSlopeValidationResult{
		IsValid:  true,
		Issues:   []string{},
		Warnings: []string{},
	}

	if cfg == nil {
		result.issue("config is missing")
		return result
	}

	fields := []struct {
		name  string
		value *big.Int
	}{
		{"target_util", cfg.TargetUtilization},
		{"r_base", cfg.RBase},
		{"r_one", cfg.ROne},
		{"r_two", cfg.RTwo},
		{"r_three", cfg.RThree},
		{"reactivity", cfg.Reactivity},
		{"ir_mod", cfg.InterestRateModifier},
	}

	missing := false
	for _, f := range fields {
		if f.value == nil {
			result.issue("%s is missing", f.name)
			missing = true
		}
	}

	if missing {
		return result
	}

	if cfg.TargetUtilization.Sign() <= 0 || cfg.TargetUtilization.Cmp(fixed.Scalar7) >= 0 {
		result.issue("target_util %s must be within (0, %s)", cfg.TargetUtilization, fixed.Scalar7)
	}

	for _, f := range fields[1:5] {
		if f.value.Sign() < 0 {
			result.issue("%s %s must not be negative", f.name, f.value)
		}
	}

	if cfg.Reactivity.Sign() <= 0 {
		result.issue("reactivity %s must be positive", cfg.Reactivity)
	}

	if cfg.InterestRateModifier.Sign() <= 0 {
		result.issue("ir_mod %s must be positive", cfg.InterestRateModifier)
	}

	if !result.IsValid {
		return result
	}

	if cfg.TargetUtilization.Cmp(EmergencyUtilization) >= 0 {
		result.warn("target_util %s is above the emergency utilization, the second slope is unreachable", cfg.TargetUtilization)
	}

	if cfg.RTwo.Cmp(cfg.ROne) < 0 {
		result.warn("r_two %s is lower than r_one %s", cfg.RTwo, cfg.ROne)
	}

	if cfg.RThree.Cmp(cfg.RTwo) < 0 {
		result.warn("r_three %s is lower than r_two %s", cfg.RThree, cfg.RTwo)
	}

	if cfg.InterestRateModifier.Cmp(MinRateModifier) < 0 || cfg.InterestRateModifier.Cmp(MaxRateModifier) > 0 {
		result.warn("ir_mod %s is outside [%s, %s]", cfg.InterestRateModifier, MinRateModifier, MaxRateModifier)
	}

	if cfg.RBase.Cmp(MaxAPR) >= 0 {
		result.warn("r_base %s reaches the rate ceiling %s", cfg.RBase, MaxAPR)
	}

	return result
}
