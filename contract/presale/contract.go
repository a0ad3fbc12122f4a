package presale

import (
	"bytes"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

// PresaleContract sells the escrowed sale tokens to whitelisted investors in two phases
type PresaleContract struct {
	addr   common.Address
	master common.Address
}

func (cont *PresaleContract) Name() string {
	return "Presale"
}

func (cont *PresaleContract) Address() common.Address {
	return cont.addr
}

func (cont *PresaleContract) Master() common.Address {
	return cont.master
}

func (cont *PresaleContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *PresaleContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &PresaleContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Owner == common.ZeroAddr {
		data.Owner = cont.master
	}
	if err := data.applyDefaults(); err != nil {
		return err
	}
	bf := &bytes.Buffer{}
	if _, err := data.WriteTo(bf); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagConfig}, bf.Bytes())
	return nil
}

// config returns the construction stored at deploy time
func (cont *PresaleContract) config(cc types.ContractLoader) (*PresaleContractConstruction, error) {
	bs := cc.ContractData([]byte{tagConfig})
	if len(bs) == 0 {
		return nil, errors.Wrap(ErrInvalidConfig, "not created")
	}
	data := &PresaleContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return data, nil
}

// onlyOwner is checked once at the start of every owner operation
func (cont *PresaleContract) onlyOwner(cc *types.ContractContext) (*PresaleContractConstruction, error) {
	cfg, err := cont.config(cc)
	if err != nil {
		return nil, err
	}
	if cc.From() != cfg.Owner {
		return nil, errors.Wrap(ErrUnauthorized, cc.From().String())
	}
	return cfg, nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *PresaleContract) Owner(cc types.ContractLoader) (common.Address, error) {
	cfg, err := cont.config(cc)
	if err != nil {
		return common.ZeroAddr, err
	}
	return cfg.Owner, nil
}

func (cont *PresaleContract) SaleToken(cc types.ContractLoader) (common.Address, error) {
	cfg, err := cont.config(cc)
	if err != nil {
		return common.ZeroAddr, err
	}
	return cfg.SaleToken, nil
}

func (cont *PresaleContract) PayToken(cc types.ContractLoader) (common.Address, error) {
	cfg, err := cont.config(cc)
	if err != nil {
		return common.ZeroAddr, err
	}
	return cfg.PayToken, nil
}

func (cont *PresaleContract) Config(cc types.ContractLoader) (*PresaleContractConstruction, error) {
	return cont.config(cc)
}
