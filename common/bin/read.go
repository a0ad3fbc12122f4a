package bin

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// ReadUint64 reads a uint64 number from the reader
func ReadUint64(r io.Reader) (uint64, int64, error) {
	bs := make([]byte, 8)
	n, err := FillBytes(r, bs)
	if err != nil {
		return 0, n, err
	}
	return Uint64(bs), n, nil
}

// ReadUint32 reads a uint32 number from the reader
func ReadUint32(r io.Reader) (uint32, int64, error) {
	bs := make([]byte, 4)
	n, err := FillBytes(r, bs)
	if err != nil {
		return 0, n, err
	}
	return Uint32(bs), n, nil
}

// ReadUint16 reads a uint16 number from the reader
func ReadUint16(r io.Reader) (uint16, int64, error) {
	bs := make([]byte, 2)
	n, err := FillBytes(r, bs)
	if err != nil {
		return 0, n, err
	}
	return Uint16(bs), n, nil
}

// ReadUint8 reads a uint8 number from the reader
func ReadUint8(r io.Reader) (uint8, int64, error) {
	bs := make([]byte, 1)
	n, err := FillBytes(r, bs)
	if err != nil {
		return 0, n, err
	}
	return bs[0], n, nil
}

// ReadBytes reads a byte array from the reader
func ReadBytes(r io.Reader) ([]byte, int64, error) {
	var read int64
	mark, n, err := ReadUint8(r)
	read += n
	if err != nil {
		return nil, read, err
	}
	size := uint32(mark)
	switch mark {
	case 254:
		v, n, err := ReadUint16(r)
		read += n
		if err != nil {
			return nil, read, err
		}
		size = uint32(v)
	case 255:
		v, n, err := ReadUint32(r)
		read += n
		if err != nil {
			return nil, read, err
		}
		size = v
	}
	bs := make([]byte, size)
	if size == 0 {
		return bs, read, nil
	}
	n, err = FillBytes(r, bs)
	read += n
	if err != nil {
		return nil, read, err
	}
	return bs, read, nil
}

// ReadString reads a string array from the reader
func ReadString(r io.Reader) (string, int64, error) {
	bs, n, err := ReadBytes(r)
	if err != nil {
		return "", n, err
	}
	return string(bs), n, nil
}

// ReadBool reads a bool using a uint8 from the reader
func ReadBool(r io.Reader) (bool, int64, error) {
	v, n, err := ReadUint8(r)
	if err != nil {
		return false, n, err
	}
	return v == 1, n, nil
}

// FillBytes reads bytes from the reader until the given bytes array is filled
func FillBytes(r io.Reader, bs []byte) (int64, error) {
	n, err := io.ReadFull(r, bs)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			return int64(n), errors.WithStack(ErrInvalidLength)
		}
		return int64(n), errors.WithStack(err)
	}
	return int64(n), nil
}

// ReadFromBytes return bytes from writer to
func ReadFromBytes(r io.ReaderFrom, bs []byte) (int64, error) {
	n, err := r.ReadFrom(bytes.NewReader(bs))
	if err != nil {
		return n, errors.WithStack(err)
	}
	return n, nil
}
