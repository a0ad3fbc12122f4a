package whitelist

import (
	"io"

	"github.com/meverselabs/presale/common/bin"
)

type WhiteListContractConstruction struct {
}

func (s *WhiteListContractConstruction) WriteTo(w io.Writer) (int64, error) {
	return 0, nil
}

func (s *WhiteListContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	return 0, nil
}

// GroupData is the stored header of a group
type GroupData struct {
	Name  string
	Count uint32
}

func (s *GroupData) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.Count); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *GroupData) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.Count); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
