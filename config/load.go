package config

import (
	"os"

	"github.com/a8m/envsubst"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file at path, expands ${VAR}-style
// environment references in the raw bytes, and decodes the result into a
// Parameters value. This is the only supported way to obtain
// SolverParameters and limit profiles outside of tests, which construct
// Parameters literals directly.
func Load(path string) (*Parameters, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %q", path)
	}

	expanded, err := envsubst.Bytes(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "expanding env vars in %q", path)
	}

	var generic map[string]interface{}
	if err := yaml.Unmarshal(expanded, &generic); err != nil {
		return nil, errors.Wrapf(err, "parsing yaml in %q", path)
	}

	params := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &params,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building config decoder")
	}
	if err := decoder.Decode(generic); err != nil {
		return nil, errors.Wrapf(err, "decoding config %q", path)
	}

	if err := params.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validating config %q", path)
	}

	return &params, nil
}

// Validate checks that every limit profile is strictly positive and the
// solver search parameters are usable.
func (p Parameters) Validate() error {
	if p.Solver.NumLoops <= 0 {
		return errors.New("solver.num_loops must be positive")
	}
	if p.Solver.ExponentDecay <= 0 {
		return errors.New("solver.exponent_decay must be positive")
	}
	if !p.Translational.Coarse.Valid() || !p.Translational.Fine.Valid() {
		return errors.New("translational limit profiles must be strictly positive")
	}
	if !p.Rotational.Coarse.Valid() || !p.Rotational.Fine.Valid() {
		return errors.New("rotational limit profiles must be strictly positive")
	}
	if p.FineModeScale <= 0 || p.FineModeScale >= 1 {
		return errors.New("fine_mode_scale must be in (0, 1)")
	}
	return nil
}
