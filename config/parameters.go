// Package config loads the external inputs the S-curve core itself never
// guesses at: solver search tuning, and the coarse/fine dynamic-limit
// profiles for the translational and rotational axes. Everything in this
// package is injected into trajectory.Facade at construction time; there
// is no process-wide mutable configuration state.
package config

import "go.viam.com/trajectorycore/kinematics"

// SolverParameters tunes the limit-relaxation search in package scurve.
type SolverParameters struct {
	NumLoops      int     `mapstructure:"num_loops"`
	AlphaDecay    float64 `mapstructure:"alpha_decay"`
	BetaDecay     float64 `mapstructure:"beta_decay"`
	ExponentDecay float64 `mapstructure:"exponent_decay"`
}

// AxisProfile carries the coarse and fine DynamicLimits for one axis.
type AxisProfile struct {
	Coarse kinematics.DynamicLimits `mapstructure:"coarse"`
	Fine   kinematics.DynamicLimits `mapstructure:"fine"`
}

// Limits selects the coarse or fine profile for this axis.
func (p AxisProfile) Limits(fineMode bool) kinematics.DynamicLimits {
	if fineMode {
		return p.Fine
	}
	return p.Coarse
}

// Parameters is the fully decoded configuration root consumed by
// trajectory.NewFacade.
type Parameters struct {
	Solver          SolverParameters `mapstructure:"solver"`
	Translational   AxisProfile      `mapstructure:"translational"`
	Rotational      AxisProfile      `mapstructure:"rotational"`
	FineModeScale   float64          `mapstructure:"fine_mode_scale"`
}

// Default returns the typical tuning named in the core's external
// interface contract: num_loops=10, alpha/beta=0.1, exponent=2.0.
func Default() Parameters {
	return Parameters{
		Solver: SolverParameters{
			NumLoops:      10,
			AlphaDecay:    0.1,
			BetaDecay:     0.1,
			ExponentDecay: 2.0,
		},
		Translational: AxisProfile{
			Coarse: kinematics.DynamicLimits{VMax: 0.5, AMax: 0.5, JMax: 1.0},
			Fine:   kinematics.DynamicLimits{VMax: 0.1, AMax: 0.2, JMax: 0.5},
		},
		Rotational: AxisProfile{
			Coarse: kinematics.DynamicLimits{VMax: 1.57, AMax: 3.14, JMax: 6.28},
			Fine:   kinematics.DynamicLimits{VMax: 0.5, AMax: 1.0, JMax: 2.0},
		},
		FineModeScale: 0.5,
	}
}
