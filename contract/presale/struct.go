package presale

import (
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/common/bin"
	"github.com/meverselabs/presale/common/hash"
	"github.com/pkg/errors"
)

// Phase is the lifecycle state of the sale, it only moves forward
type Phase uint8

const (
	Inactive     = Phase(0)
	Phase1Active = Phase(1)
	Phase2Active = Phase(2)
	Ended        = Phase(3)
)

func (p Phase) String() string {
	switch p {
	case Inactive:
		return "Inactive"
	case Phase1Active:
		return "Phase1Active"
	case Phase2Active:
		return "Phase2Active"
	case Ended:
		return "Ended"
	default:
		return "Unknown"
	}
}

// AcceptedAsset returns the asset taken while the phase runs
func (p Phase) AcceptedAsset() AssetKind {
	switch p {
	case Phase1Active:
		return AssetSaleToken
	case Phase2Active:
		return AssetNativeCurrency
	default:
		return AssetNone
	}
}

// AssetKind names what a contribution is paid with
type AssetKind uint8

const (
	AssetNone           = AssetKind(0)
	AssetSaleToken      = AssetKind(1)
	AssetNativeCurrency = AssetKind(2)
)

func (a AssetKind) String() string {
	switch a {
	case AssetSaleToken:
		return "token"
	case AssetNativeCurrency:
		return "native"
	default:
		return "none"
	}
}

// Contributions returns the human readable name used in errors
func (a AssetKind) Contributions() string {
	switch a {
	case AssetSaleToken:
		return "token contributions"
	case AssetNativeCurrency:
		return "native contributions"
	default:
		return "no contributions"
	}
}

// Rate is an exact conversion ratio of Num sale tokens for Den paid units
type Rate struct {
	Num uint64
	Den uint64
}

func (r Rate) IsValid() bool {
	return r.Num > 0 && r.Den > 0
}

func (r Rate) Rat() *big.Rat {
	if r.Den == 0 {
		return new(big.Rat)
	}
	return new(big.Rat).SetFrac(new(big.Int).SetUint64(r.Num), new(big.Int).SetUint64(r.Den))
}

func (r Rate) String() string {
	return r.Rat().RatString()
}

// ParseRate parses "num/den" or a bare integer
func ParseRate(str string) (Rate, error) {
	ls := strings.SplitN(strings.TrimSpace(str), "/", 2)
	num, err := strconv.ParseUint(strings.TrimSpace(ls[0]), 10, 64)
	if err != nil {
		return Rate{}, errors.Wrapf(ErrInvalidRate, "%v", str)
	}
	r := Rate{Num: num, Den: 1}
	if len(ls) == 2 {
		den, err := strconv.ParseUint(strings.TrimSpace(ls[1]), 10, 64)
		if err != nil {
			return Rate{}, errors.Wrapf(ErrInvalidRate, "%v", str)
		}
		r.Den = den
	}
	if !r.IsValid() {
		return Rate{}, errors.Wrapf(ErrInvalidRate, "%v", str)
	}
	return r, nil
}

var (
	DefaultPhase1Rate    = Rate{Num: 1, Den: 1}
	DefaultPhase2Rate    = Rate{Num: 25, Den: 7}
	DefaultPhase2DevRate = Rate{Num: 50, Den: 9}
)

type PresaleContractConstruction struct {
	Owner              common.Address
	SaleToken          common.Address
	PayToken           common.Address
	TokenDecimals      uint8
	Phase1Rate         Rate
	Phase1DevRate      Rate
	Phase2Rate         Rate
	Phase2DevRate      Rate
	InvestmentLimit    *amount.Amount
	AllowEndFromPhase1 bool
	RefundEnabled      bool
	WhiteListAddress   common.Address
	WhiteListGroupId   hash.Hash256
}

// applyDefaults fills the zero fields, an invalid rate left after that is rejected
func (s *PresaleContractConstruction) applyDefaults() error {
	if s.SaleToken == common.ZeroAddr {
		return errors.Wrap(ErrInvalidConfig, "sale token not given")
	}
	if s.PayToken == common.ZeroAddr {
		return errors.Wrap(ErrInvalidConfig, "pay token not given")
	}
	if s.TokenDecimals == 0 {
		s.TokenDecimals = amount.FractionalCount
	}
	if s.Phase1Rate == (Rate{}) {
		s.Phase1Rate = DefaultPhase1Rate
	}
	if s.Phase1DevRate == (Rate{}) {
		s.Phase1DevRate = s.Phase1Rate
	}
	if s.Phase2Rate == (Rate{}) {
		s.Phase2Rate = DefaultPhase2Rate
	}
	if s.Phase2DevRate == (Rate{}) {
		s.Phase2DevRate = DefaultPhase2DevRate
	}
	for _, r := range []Rate{s.Phase1Rate, s.Phase1DevRate, s.Phase2Rate, s.Phase2DevRate} {
		if !r.IsValid() {
			return errors.Wrapf(ErrInvalidRate, "%v/%v", r.Num, r.Den)
		}
	}
	if s.InvestmentLimit == nil {
		s.InvestmentLimit = amount.NewAmount(0, 0)
	}
	return nil
}

func writeRate(sw *bin.SumWriter, w io.Writer, r Rate) (int64, error) {
	if sum, err := sw.Uint64(w, r.Num); err != nil {
		return sum, err
	}
	return sw.Uint64(w, r.Den)
}

func readRate(sr *bin.SumReader, r io.Reader, p *Rate) (int64, error) {
	if sum, err := sr.Uint64(r, &p.Num); err != nil {
		return sum, err
	}
	return sr.Uint64(r, &p.Den)
}

func (s *PresaleContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.SaleToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.PayToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint8(w, s.TokenDecimals); err != nil {
		return sum, err
	}
	for _, r := range []Rate{s.Phase1Rate, s.Phase1DevRate, s.Phase2Rate, s.Phase2DevRate} {
		if sum, err := writeRate(sw, w, r); err != nil {
			return sum, err
		}
	}
	if sum, err := sw.Amount(w, s.InvestmentLimit); err != nil {
		return sum, err
	}
	if sum, err := sw.Bool(w, s.AllowEndFromPhase1); err != nil {
		return sum, err
	}
	if sum, err := sw.Bool(w, s.RefundEnabled); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.WhiteListAddress); err != nil {
		return sum, err
	}
	if sum, err := sw.Hash256(w, s.WhiteListGroupId); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *PresaleContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.SaleToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.PayToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint8(r, &s.TokenDecimals); err != nil {
		return sum, err
	}
	for _, p := range []*Rate{&s.Phase1Rate, &s.Phase1DevRate, &s.Phase2Rate, &s.Phase2DevRate} {
		if sum, err := readRate(sr, r, p); err != nil {
			return sum, err
		}
	}
	if sum, err := sr.Amount(r, &s.InvestmentLimit); err != nil {
		return sum, err
	}
	if sum, err := sr.Bool(r, &s.AllowEndFromPhase1); err != nil {
		return sum, err
	}
	if sum, err := sr.Bool(r, &s.RefundEnabled); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.WhiteListAddress); err != nil {
		return sum, err
	}
	if sum, err := sr.Hash256(r, &s.WhiteListGroupId); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

// Investment is the running record of one investor
type Investment struct {
	Token          *amount.Amount `json:"token"`
	Native         *amount.Amount `json:"native"`
	Issued         *amount.Amount `json:"issued"`
	StandardIssued *amount.Amount `json:"standardIssued"`
}

func newInvestment() *Investment {
	return &Investment{
		Token:          amount.NewAmount(0, 0),
		Native:         amount.NewAmount(0, 0),
		Issued:         amount.NewAmount(0, 0),
		StandardIssued: amount.NewAmount(0, 0),
	}
}

// Total returns the principal of both assets in smallest units
func (s *Investment) Total() *amount.Amount {
	return s.Token.Add(s.Native)
}

// Principal returns the principal paid with the asset
func (s *Investment) Principal(asset AssetKind) *amount.Amount {
	switch asset {
	case AssetSaleToken:
		return s.Token.Clone()
	case AssetNativeCurrency:
		return s.Native.Clone()
	default:
		return amount.NewAmount(0, 0)
	}
}

func (s *Investment) IsEmpty() bool {
	return s.Token.IsZero() && s.Native.IsZero() && s.Issued.IsZero()
}

func (s *Investment) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	for _, v := range []*amount.Amount{s.Token, s.Native, s.Issued, s.StandardIssued} {
		if sum, err := sw.Amount(w, v); err != nil {
			return sum, err
		}
	}
	return sw.Sum(), nil
}

func (s *Investment) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	for _, p := range []**amount.Amount{&s.Token, &s.Native, &s.Issued, &s.StandardIssued} {
		if sum, err := sr.Amount(r, p); err != nil {
			return sum, err
		}
	}
	return sr.Sum(), nil
}
