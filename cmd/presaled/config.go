package main

import (
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/contract/presale"
	"github.com/pkg/errors"
)

// Config is a configuration for the presale daemon
type Config struct {
	ChainID    uint64        `toml:"chain_id" yaml:"chain_id"`
	Backend    string        `toml:"backend" yaml:"backend"`
	StoreRoot  string        `toml:"store_root" yaml:"store_root"`
	RPCAddress string        `toml:"rpc_address" yaml:"rpc_address"`
	Verbose    bool          `toml:"verbose" yaml:"verbose"`
	Admin      string        `toml:"admin" yaml:"admin"`
	Native     TokenConfig   `toml:"native" yaml:"native"`
	SaleToken  TokenConfig   `toml:"sale_token" yaml:"sale_token"`
	PayToken   TokenConfig   `toml:"pay_token" yaml:"pay_token"`
	Presale    PresaleConfig `toml:"presale" yaml:"presale"`
}

// TokenConfig describes a token deployed at genesis, Supply maps an address to a coin amount
type TokenConfig struct {
	Name     string            `toml:"name" yaml:"name"`
	Symbol   string            `toml:"symbol" yaml:"symbol"`
	Decimals uint8             `toml:"decimals" yaml:"decimals"`
	Supply   map[string]string `toml:"supply" yaml:"supply"`
}

// PresaleConfig describes the sale, rates are written as "num/den"
type PresaleConfig struct {
	Owner              string   `toml:"owner" yaml:"owner"`
	TokenDecimals      uint8    `toml:"token_decimals" yaml:"token_decimals"`
	Phase1Rate         string   `toml:"phase1_rate" yaml:"phase1_rate"`
	Phase1DevRate      string   `toml:"phase1_dev_rate" yaml:"phase1_dev_rate"`
	Phase2Rate         string   `toml:"phase2_rate" yaml:"phase2_rate"`
	Phase2DevRate      string   `toml:"phase2_dev_rate" yaml:"phase2_dev_rate"`
	InvestmentLimit    string   `toml:"investment_limit" yaml:"investment_limit"`
	AllowEndFromPhase1 bool     `toml:"allow_end_from_phase1" yaml:"allow_end_from_phase1"`
	RefundEnabled      bool     `toml:"refund_enabled" yaml:"refund_enabled"`
	Escrow             string   `toml:"escrow" yaml:"escrow"`
	WhitelistGroup     string   `toml:"whitelist_group" yaml:"whitelist_group"`
	Whitelist          []string `toml:"whitelist" yaml:"whitelist"`
	DevAddresses       []string `toml:"dev_addresses" yaml:"dev_addresses"`
}

func (cfg *Config) applyDefaults() {
	if cfg.ChainID == 0 {
		cfg.ChainID = 1
	}
	if len(cfg.Backend) == 0 {
		cfg.Backend = "leveldb"
	}
	if len(cfg.StoreRoot) == 0 {
		cfg.StoreRoot = "./pdata"
	}
	if len(cfg.RPCAddress) == 0 {
		cfg.RPCAddress = "127.0.0.1:8541"
	}
}

func parseSupply(supply map[string]string) (map[common.Address]*amount.Amount, error) {
	m := map[common.Address]*amount.Amount{}
	for k, v := range supply {
		addr, err := common.ParseAddress(k)
		if err != nil {
			return nil, errors.Wrapf(err, "supply address %v", k)
		}
		am, err := amount.ParseAmount(v)
		if err != nil {
			return nil, errors.Wrapf(err, "supply amount %v", v)
		}
		m[addr] = am
	}
	return m, nil
}

func parseRate(str string) (presale.Rate, error) {
	if len(str) == 0 {
		return presale.Rate{}, nil
	}
	return presale.ParseRate(str)
}

func parseAmount(str string) (*amount.Amount, error) {
	if len(str) == 0 {
		return amount.NewAmount(0, 0), nil
	}
	return amount.ParseAmount(str)
}

// construction returns the presale construction without the token and whitelist addresses
func (pc *PresaleConfig) construction(admin common.Address) (*presale.PresaleContractConstruction, error) {
	arg := &presale.PresaleContractConstruction{
		Owner:              admin,
		TokenDecimals:      pc.TokenDecimals,
		AllowEndFromPhase1: pc.AllowEndFromPhase1,
		RefundEnabled:      pc.RefundEnabled,
	}
	if len(pc.Owner) > 0 {
		owner, err := common.ParseAddress(pc.Owner)
		if err != nil {
			return nil, errors.Wrap(err, "presale owner")
		}
		arg.Owner = owner
	}
	rates := []*presale.Rate{&arg.Phase1Rate, &arg.Phase1DevRate, &arg.Phase2Rate, &arg.Phase2DevRate}
	for i, str := range []string{pc.Phase1Rate, pc.Phase1DevRate, pc.Phase2Rate, pc.Phase2DevRate} {
		r, err := parseRate(str)
		if err != nil {
			return nil, err
		}
		*rates[i] = r
	}
	limit, err := parseAmount(pc.InvestmentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "investment limit")
	}
	arg.InvestmentLimit = limit
	return arg, nil
}
