// Package catalogwire hand-encodes and decodes the three-field
// LeapCatalog schema (positive_leaps repeated int32 field 1,
// negative_leaps repeated int32 field 2, end_jdn int32 field 3) using
// protowire's tag/varint primitives directly, so field numbers stay
// stable across versions without a protoc/buf code-generation step.
package catalogwire

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldPositiveLeaps protowire.Number = 1
	fieldNegativeLeaps protowire.Number = 2
	fieldEndJDN        protowire.Number = 3
)

// Catalog mirrors the wire schema as plain Go data, independent of
// catalog.LeapCatalog so this package has no import-cycle dependency
// on its caller.
type Catalog struct {
	PositiveLeaps []int32
	NegativeLeaps []int32
	EndJDN        int32
	HasEndJDN     bool
}

func appendPackedVarint(b []byte, num protowire.Number, vals []int32) []byte {
	if len(vals) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vals {
		packed = protowire.AppendVarint(packed, uint64(int64(v)))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

// Marshal encodes c as a protobuf binary message.
func Marshal(c Catalog) []byte {
	var b []byte
	b = appendPackedVarint(b, fieldPositiveLeaps, c.PositiveLeaps)
	b = appendPackedVarint(b, fieldNegativeLeaps, c.NegativeLeaps)
	if c.HasEndJDN {
		b = protowire.AppendTag(b, fieldEndJDN, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(c.EndJDN)))
	}
	return b
}

// Unmarshal decodes a protobuf binary message into a Catalog. It
// accepts both packed and unpacked (one tag per value) encodings of
// the repeated fields, matching proto3's wire compatibility rules.
func Unmarshal(b []byte) (Catalog, error) {
	var c Catalog
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Catalog{}, errors.Wrap(protowire.ParseError(n), "catalogwire: consume tag")
		}
		b = b[n:]
		switch num {
		case fieldPositiveLeaps:
			vals, consumed, err := consumeInt32Field(b, typ)
			if err != nil {
				return Catalog{}, errors.WithMessage(err, "catalogwire: positive_leaps")
			}
			c.PositiveLeaps = append(c.PositiveLeaps, vals...)
			b = b[consumed:]
		case fieldNegativeLeaps:
			vals, consumed, err := consumeInt32Field(b, typ)
			if err != nil {
				return Catalog{}, errors.WithMessage(err, "catalogwire: negative_leaps")
			}
			c.NegativeLeaps = append(c.NegativeLeaps, vals...)
			b = b[consumed:]
		case fieldEndJDN:
			if typ != protowire.VarintType {
				return Catalog{}, errors.Errorf("catalogwire: end_jdn has wrong wire type %d", typ)
			}
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return Catalog{}, errors.Wrap(protowire.ParseError(m), "catalogwire: end_jdn")
			}
			c.EndJDN = int32(int64(v))
			c.HasEndJDN = true
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return Catalog{}, errors.Wrap(protowire.ParseError(m), "catalogwire: unknown field")
			}
			b = b[m:]
		}
	}
	return c, nil
}

// consumeInt32Field consumes either a packed (length-delimited) or a
// single unpacked varint occurrence of a repeated int32 field.
func consumeInt32Field(b []byte, typ protowire.Type) ([]int32, int, error) {
	switch typ {
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, 0, errors.Wrap(protowire.ParseError(n), "consume packed bytes")
		}
		var vals []int32
		for len(packed) > 0 {
			v, m := protowire.ConsumeVarint(packed)
			if m < 0 {
				return nil, 0, errors.Wrap(protowire.ParseError(m), "consume packed varint")
			}
			vals = append(vals, int32(int64(v)))
			packed = packed[m:]
		}
		return vals, n, nil
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, 0, errors.Wrap(protowire.ParseError(n), "consume unpacked varint")
		}
		return []int32{int32(int64(v))}, n, nil
	default:
		return nil, 0, errors.Errorf("catalogwire: unexpected wire type %d for repeated int32 field", typ)
	}
}
