package main

import (
	"io"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/bin"
	"github.com/meverselabs/presale/common/hash"
	"github.com/meverselabs/presale/contract/presale"
	"github.com/meverselabs/presale/contract/token"
	"github.com/meverselabs/presale/contract/whitelist"
	"github.com/meverselabs/presale/core/chain"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

var (
	tokenClassID     uint64
	whitelistClassID uint64
	presaleClassID   uint64
)

func init() {
	var err error
	if tokenClassID, err = types.RegisterContractType(&token.TokenContract{}); err != nil {
		panic(err)
	}
	if whitelistClassID, err = types.RegisterContractType(&whitelist.WhiteListContract{}); err != nil {
		panic(err)
	}
	if presaleClassID, err = types.RegisterContractType(&presale.PresaleContract{}); err != nil {
		panic(err)
	}
}

// Genesis holds the addresses deployed at genesis
type Genesis struct {
	Admin     common.Address
	MainToken common.Address
	SaleToken common.Address
	PayToken  common.Address
	WhiteList common.Address
	GroupId   hash.Hash256
	Presale   common.Address
}

func deploy(ctx *types.Context, owner common.Address, ClassID uint64, arg io.WriterTo) (common.Address, error) {
	bs, _, err := bin.WriterToBytes(arg)
	if err != nil {
		return common.ZeroAddr, err
	}
	cont, err := ctx.DeployContract(owner, ClassID, bs)
	if err != nil {
		return common.ZeroAddr, err
	}
	return cont.Address(), nil
}

func deployToken(ctx *types.Context, owner common.Address, tc *TokenConfig) (common.Address, error) {
	supply, err := parseSupply(tc.Supply)
	if err != nil {
		return common.ZeroAddr, err
	}
	return deploy(ctx, owner, tokenClassID, &token.TokenContractConstruction{
		Name:             tc.Name,
		Symbol:           tc.Symbol,
		Decimals:         tc.Decimals,
		InitialSupplyMap: supply,
	})
}

// Build deploys the tokens and the presale described by cfg into the genesis context
func (g *Genesis) Build(cfg *Config) func(ctx *types.Context) error {
	return func(ctx *types.Context) error {
		admin, err := common.ParseAddress(cfg.Admin)
		if err != nil {
			return errors.Wrap(err, "admin")
		}
		g.Admin = admin

		if g.MainToken, err = deployToken(ctx, admin, &cfg.Native); err != nil {
			return err
		}
		ctx.SetMainToken(g.MainToken)
		if g.SaleToken, err = deployToken(ctx, admin, &cfg.SaleToken); err != nil {
			return err
		}
		if g.PayToken, err = deployToken(ctx, admin, &cfg.PayToken); err != nil {
			return err
		}

		arg, err := cfg.Presale.construction(admin)
		if err != nil {
			return err
		}
		arg.SaleToken = g.SaleToken
		arg.PayToken = g.PayToken

		whitelisted, err := common.ParseAddresses(cfg.Presale.Whitelist)
		if err != nil {
			return errors.Wrap(err, "whitelist")
		}
		if len(cfg.Presale.WhitelistGroup) > 0 {
			if g.WhiteList, err = deploy(ctx, admin, whitelistClassID, &whitelist.WhiteListContractConstruction{}); err != nil {
				return err
			}
			is, err := chain.ExecContract(ctx, admin, g.WhiteList, "AddGroup", []interface{}{cfg.Presale.WhitelistGroup}, nil)
			if err != nil {
				return err
			}
			g.GroupId = is[0].(hash.Hash256)
			if len(whitelisted) > 0 {
				if _, err := chain.ExecContract(ctx, admin, g.WhiteList, "AddAddresses", []interface{}{g.GroupId, whitelisted}, nil); err != nil {
					return err
				}
			}
			arg.WhiteListAddress = g.WhiteList
			arg.WhiteListGroupId = g.GroupId
		}

		if g.Presale, err = deploy(ctx, admin, presaleClassID, arg); err != nil {
			return err
		}
		if len(cfg.Presale.WhitelistGroup) == 0 && len(whitelisted) > 0 {
			if _, err := chain.ExecContract(ctx, arg.Owner, g.Presale, "AddWhitelistAddresses", []interface{}{whitelisted}, nil); err != nil {
				return err
			}
		}
		if len(cfg.Presale.DevAddresses) > 0 {
			devs, err := common.ParseAddresses(cfg.Presale.DevAddresses)
			if err != nil {
				return errors.Wrap(err, "dev addresses")
			}
			if _, err := chain.ExecContract(ctx, arg.Owner, g.Presale, "AddDevAddresses", []interface{}{devs}, nil); err != nil {
				return err
			}
		}

		escrow, err := parseAmount(cfg.Presale.Escrow)
		if err != nil {
			return errors.Wrap(err, "escrow")
		}
		if escrow.IsPlus() {
			if _, err := chain.ExecContract(ctx, admin, g.SaleToken, "Transfer", []interface{}{g.Presale, escrow}, nil); err != nil {
				return errors.Wrap(err, "escrow transfer")
			}
		}
		return nil
	}
}
