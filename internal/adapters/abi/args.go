package abi

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// Codec converts command-line strings into the Go values go-ethereum packs
// for each ABI type, and renders returned values back to text
type Codec struct{}

// NewCodec creates a new Codec
func NewCodec() *Codec {
	return &Codec{}
}

// ParseArgs parses one raw string per input
func (c *Codec) ParseArgs(inputs abi.Arguments, raw []string) ([]any, error) {
	if len(raw) != len(inputs) {
		return nil, fmt.Errorf("expected %d arguments (%s), got %d", len(inputs), describe(inputs), len(raw))
	}

	args := make([]any, len(inputs))
	for i, input := range inputs {
		v, err := parseValue(input.Type, raw[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, input.Type.String(), err)
		}
		args[i] = v
	}
	return args, nil
}

func describe(inputs abi.Arguments) string {
	parts := make([]string, len(inputs))
	for i, in := range inputs {
		parts[i] = strings.TrimSpace(in.Type.String() + " " + in.Name)
	}
	return strings.Join(parts, ", ")
}

func parseValue(t abi.Type, s string) (any, error) {
	s = strings.TrimSpace(s)

	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
		}
		return common.HexToAddress(s), nil

	case abi.BoolTy:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", s)
		}
		return b, nil

	case abi.StringTy:
		return s, nil

	case abi.BytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex bytes %q: %w", s, err)
		}
		return b, nil

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex bytes %q: %w", s, err)
		}
		if len(b) > t.Size {
			return nil, fmt.Errorf("%d bytes do not fit in bytes%d", len(b), t.Size)
		}
		// right-padded like Solidity
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	case abi.UintTy, abi.IntTy:
		return parseInteger(t, s)

	case abi.SliceTy, abi.ArrayTy:
		return parseList(t, s)
	}

	return nil, fmt.Errorf("unsupported argument type %s", t.String())
}

func parseInteger(t abi.Type, s string) (any, error) {
	n, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}

	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for unsigned type", n)
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("%s overflows uint%d", n, t.Size)
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, fmt.Errorf("%s overflows int%d", n, t.Size)
		}
	}

	// go-ethereum packs sizes up to 64 bits from native integers
	switch t.GetType().Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := reflect.New(t.GetType()).Elem()
		v.SetUint(n.Uint64())
		return v.Interface(), nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := reflect.New(t.GetType()).Elem()
		v.SetInt(n.Int64())
		return v.Interface(), nil
	}
	return n, nil
}

// parseList accepts [a,b,c] or a,b,c
func parseList(t abi.Type, s string) (any, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	var items []string
	if strings.TrimSpace(s) != "" {
		items = strings.Split(s, ",")
	}

	if t.T == abi.ArrayTy && len(items) != t.Size {
		return nil, fmt.Errorf("expected %d elements, got %d", t.Size, len(items))
	}

	var list reflect.Value
	if t.T == abi.ArrayTy {
		list = reflect.New(t.GetType()).Elem()
	} else {
		list = reflect.MakeSlice(t.GetType(), len(items), len(items))
	}

	for i, item := range items {
		v, err := parseValue(*t.Elem, item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		list.Index(i).Set(reflect.ValueOf(v))
	}
	return list.Interface(), nil
}

var _ usecase.ArgCodec = (*Codec)(nil)
