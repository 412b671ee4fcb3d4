package kv

import (
	"errors"
	"reflect"

	ssz "github.com/ferranbt/fastssz"
	"github.com/golang/snappy"
)

// sszUnmarshaler is satisfied by the fastssz types stored in the db.
type sszUnmarshaler interface {
	UnmarshalSSZ(buf []byte) error
}

func decode(data []byte, dst sszUnmarshaler) error {
	data, err := snappy.Decode(nil, data)
	if err != nil {
		return err
	}
	return dst.UnmarshalSSZ(data)
}

func encode(obj ssz.Marshaler) ([]byte, error) {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return nil, errors.New("cannot encode nil message")
	}
	enc, err := obj.MarshalSSZ()
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, enc), nil
}
