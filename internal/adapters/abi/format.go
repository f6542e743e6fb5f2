package abi

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FormatValue renders a decoded ABI value for display
func (c *Codec) FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case *big.Int:
		if val == nil {
			return "0"
		}
		return val.String()
	case common.Address:
		return val.Hex()
	case common.Hash:
		return val.Hex()
	case []byte:
		return hexutil.Encode(val)
	case string:
		return val
	case bool:
		return fmt.Sprintf("%t", val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array:
		// bytesN
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			for i := range b {
				b[i] = byte(rv.Index(i).Uint())
			}
			return hexutil.Encode(b)
		}
		return c.formatList(rv)
	case reflect.Slice:
		return c.formatList(rv)
	case reflect.Struct:
		// tuples are decoded into anonymous structs
		parts := make([]string, rv.NumField())
		for i := range parts {
			parts[i] = fmt.Sprintf("%s: %s", rv.Type().Field(i).Name, c.FormatValue(rv.Field(i).Interface()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprint(v)
}

func (c *Codec) formatList(rv reflect.Value) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = c.FormatValue(rv.Index(i).Interface())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
