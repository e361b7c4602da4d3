package backstop

import (
	"blend/core"
	"time"
)

const (
	// DefaultQ4WBaseDelay base queue for withdrawal delay
	DefaultQ4WBaseDelay = 7 * 24 * time.Hour
	// DefaultQ4WMaxDelay delay enforced while the backstop is in emergency
	DefaultQ4WMaxDelay = 30 * 24 * time.Hour
)

// DefaultPolicy protocol policy constants
func DefaultPolicy() core.BackstopPolicy {
	return core.BackstopPolicy{
		Q4WBaseDelay:          DefaultQ4WBaseDelay,
		Q4WMaxDelay:           DefaultQ4WMaxDelay,
		HighUtilization:       0.9,
		HighUtilizationFactor: 2,
		LowBufferRatio:        1.2,
		LowBufferFactor:       1.5,
		MediumSeverityMargin:  0.10,
		LowSeverityMargin:     0.25,
		AuctionDurations: map[core.Urgency]time.Duration{
			core.UrgencyLow:    7 * 24 * time.Hour,
			core.UrgencyMedium: 24 * time.Hour,
			core.UrgencyHigh:   time.Hour,
		},
		StartingBidMultipliers: map[core.AuctionType]map[core.Urgency]float64{
			core.AuctionTypeBadDebt: {
				core.UrgencyLow:    0.8,
				core.UrgencyMedium: 0.65,
				core.UrgencyHigh:   0.5,
			},
			core.AuctionTypeLiquidation: {
				core.UrgencyLow:    0.9,
				core.UrgencyMedium: 0.8,
				core.UrgencyHigh:   0.7,
			},
			core.AuctionTypeInterest: {
				core.UrgencyLow:    0.95,
				core.UrgencyMedium: 0.95,
				core.UrgencyHigh:   0.95,
			},
		},
		ReservePremium:   0.1,
		MinBidIncrement:  0.01,
		EndingSoonWindow: 5 * time.Minute,
	}
}

// WithDefaults fills every unset field of p with the protocol default
func WithDefaults(p core.BackstopPolicy) core.BackstopPolicy {
	d := DefaultPolicy()

	if p.Q4WBaseDelay <= 0 {
		p.Q4WBaseDelay = d.Q4WBaseDelay
	}
	if p.Q4WMaxDelay <= 0 {
		p.Q4WMaxDelay = d.Q4WMaxDelay
	}
	if p.Q4WMaxDelay < p.Q4WBaseDelay {
		p.Q4WMaxDelay = p.Q4WBaseDelay
	}
	if p.HighUtilization <= 0 {
		p.HighUtilization = d.HighUtilization
	}
	if p.HighUtilizationFactor < 1 {
		p.HighUtilizationFactor = d.HighUtilizationFactor
	}
	if p.LowBufferRatio <= 0 {
		p.LowBufferRatio = d.LowBufferRatio
	}
	if p.LowBufferFactor < 1 {
		p.LowBufferFactor = d.LowBufferFactor
	}
	if p.MediumSeverityMargin <= 0 {
		p.MediumSeverityMargin = d.MediumSeverityMargin
	}
	if p.LowSeverityMargin <= 0 {
		p.LowSeverityMargin = d.LowSeverityMargin
	}
	if p.LowSeverityMargin < p.MediumSeverityMargin {
		p.LowSeverityMargin = p.MediumSeverityMargin
	}

	durations := make(map[core.Urgency]time.Duration, len(d.AuctionDurations))
	for u, v := range d.AuctionDurations {
		durations[u] = v
	}
	for u, v := range p.AuctionDurations {
		if v > 0 {
			durations[u] = v
		}
	}
	p.AuctionDurations = durations

	multipliers := make(map[core.AuctionType]map[core.Urgency]float64, len(d.StartingBidMultipliers))
	for t, table := range d.StartingBidMultipliers {
		multipliers[t] = make(map[core.Urgency]float64, len(table))
		for u, v := range table {
			multipliers[t][u] = v
		}
	}
	for t, table := range p.StartingBidMultipliers {
		if _, ok := multipliers[t]; !ok {
			multipliers[t] = make(map[core.Urgency]float64, len(table))
		}
		for u, v := range table {
			if v > 0 && v <= 1 {
				multipliers[t][u] = v
			}
		}
	}
	p.StartingBidMultipliers = multipliers

	if p.ReservePremium <= 0 {
		p.ReservePremium = d.ReservePremium
	}
	if p.MinBidIncrement <= 0 {
		p.MinBidIncrement = d.MinBidIncrement
	}
	if p.EndingSoonWindow <= 0 {
		p.EndingSoonWindow = d.EndingSoonWindow
	}

	return p
}
