package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

const sampleConfig = `
solver:
  num_loops: 12
  alpha_decay: 0.2
  beta_decay: 0.15
  exponent_decay: 2.0
translational:
  coarse: {v_max: 0.5, a_max: 0.5, j_max: 1.0}
  fine:   {v_max: ${FINE_V_MAX}, a_max: 0.2, j_max: 0.5}
rotational:
  coarse: {v_max: 1.57, a_max: 3.14, j_max: 6.28}
  fine:   {v_max: 0.5, a_max: 1.0, j_max: 2.0}
fine_mode_scale: 0.5
`

func TestLoad(t *testing.T) {
	t.Setenv("FINE_V_MAX", "0.1")

	dir := t.TempDir()
	path := filepath.Join(dir, "solver.yaml")
	test.That(t, os.WriteFile(path, []byte(sampleConfig), 0o600), test.ShouldBeNil)

	params, err := Load(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, params.Solver.NumLoops, test.ShouldEqual, 12)
	test.That(t, params.Translational.Fine.VMax, test.ShouldAlmostEqual, 0.1)
	test.That(t, params.Rotational.Coarse.AMax, test.ShouldAlmostEqual, 3.14)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestValidateRejectsNonPositiveLimits(t *testing.T) {
	params := Default()
	params.Rotational.Fine.JMax = 0
	test.That(t, params.Validate(), test.ShouldNotBeNil)
}

func TestValidateRejectsOutOfRangeFineModeScale(t *testing.T) {
	params := Default()
	params.FineModeScale = 1
	test.That(t, params.Validate(), test.ShouldNotBeNil)
}
