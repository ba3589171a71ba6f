package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"gopkg.in/yaml.v3"
)

// profile describes the deployment the command works with. Flags take
// precedence over profile values.
type profile struct {
	RPC      string `yaml:"rpc"`
	Registry string `yaml:"registry"`
	Asset    string `yaml:"asset"`
}

// deployment is a resolved profile.
type deployment struct {
	registry util.Uint160
	// nil if not configured.
	asset *util.Uint160
}

func loadProfile(path string) (profile, error) {
	var p profile

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}

	err = yaml.Unmarshal(data, &p)
	if err != nil {
		return p, fmt.Errorf("decode profile '%s': %w", path, err)
	}

	return p, nil
}

// override replaces profile values with non-empty values of o.
func (p *profile) override(o profile) {
	if o.RPC != "" {
		p.RPC = o.RPC
	}
	if o.Registry != "" {
		p.Registry = o.Registry
	}
	if o.Asset != "" {
		p.Asset = o.Asset
	}
}

func (p profile) validate() error {
	switch {
	case p.RPC == "":
		return errors.New("missing Neo RPC endpoint")
	case p.Registry == "":
		return errors.New("missing node registry contract")
	}
	return nil
}

func (p profile) contracts() (deployment, error) {
	var (
		res deployment
		err error
	)

	res.registry, err = parseAccount(p.Registry)
	if err != nil {
		return res, fmt.Errorf("invalid registry contract: %w", err)
	}

	if p.Asset != "" {
		asset, err := parseAccount(p.Asset)
		if err != nil {
			return res, fmt.Errorf("invalid asset contract: %w", err)
		}
		res.asset = &asset
	}

	return res, nil
}

// parseAccount accepts either Neo address or little-endian hex script hash.
func parseAccount(s string) (util.Uint160, error) {
	if u, err := address.StringToUint160(s); err == nil {
		return u, nil
	}
	return util.Uint160DecodeStringLE(s)
}
