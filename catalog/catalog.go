// Package catalog is the serialized container for a leap-second
// catalog: the same (positive_leaps, negative_leaps, end_jdn) schema
// LeapTable validates, plus binary, textproto, JSON, and debug
// encodings of it.
package catalog

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/skytime/smeartai"
	"github.com/skytime/smeartai/internal/catalogwire"
)

// log is catalog's diagnostic logger, overridable the same way
// smeartai.SetLogger is.
var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the logger used to report catalog decode and
// validation diagnostics.
func SetLogger(l logrus.FieldLogger) { log = l }

// LeapCatalog is the wire-schema view of a leap-second table: JDNs of
// positive and negative leaps, plus the JDN through which the catalog
// is known to be complete.
type LeapCatalog struct {
	PositiveLeaps []int64
	NegativeLeaps []int64
	EndJDN        int64
}

// ToLeapTable validates c and constructs the corresponding LeapTable.
func (c LeapCatalog) ToLeapTable() (*smeartai.LeapTable, error) {
	lt, err := smeartai.NewLeapTable(c.PositiveLeaps, c.NegativeLeaps, c.EndJDN)
	if err != nil {
		log.WithError(err).WithField("end_jdn", c.EndJDN).Warn("catalog: invalid leap catalog")
		return nil, errors.WithMessage(err, "catalog: invalid leap catalog")
	}
	return lt, nil
}

// FromLeapTable reconstructs the LeapCatalog that would, re-validated
// through ToLeapTable, rebuild an equal table.
func FromLeapTable(lt *smeartai.LeapTable) LeapCatalog {
	pos, neg, end := lt.ToCatalogData()
	return LeapCatalog{PositiveLeaps: pos, NegativeLeaps: neg, EndJDN: end}
}

func toWire(c LeapCatalog) (catalogwire.Catalog, error) {
	pos, err := int64sToInt32s(c.PositiveLeaps)
	if err != nil {
		return catalogwire.Catalog{}, errors.WithMessage(err, "positive_leaps")
	}
	neg, err := int64sToInt32s(c.NegativeLeaps)
	if err != nil {
		return catalogwire.Catalog{}, errors.WithMessage(err, "negative_leaps")
	}
	if c.EndJDN < math.MinInt32 || c.EndJDN > math.MaxInt32 {
		return catalogwire.Catalog{}, errors.Errorf("end_jdn %d overflows int32", c.EndJDN)
	}
	return catalogwire.Catalog{
		PositiveLeaps: pos,
		NegativeLeaps: neg,
		EndJDN:        int32(c.EndJDN),
		HasEndJDN:     true,
	}, nil
}

func fromWire(w catalogwire.Catalog) (LeapCatalog, error) {
	if !w.HasEndJDN {
		return LeapCatalog{}, errors.New("catalog: end_jdn is required but missing")
	}
	return LeapCatalog{
		PositiveLeaps: int32sToInt64s(w.PositiveLeaps),
		NegativeLeaps: int32sToInt64s(w.NegativeLeaps),
		EndJDN:        int64(w.EndJDN),
	}, nil
}

func int64sToInt32s(vs []int64) ([]int32, error) {
	if vs == nil {
		return nil, nil
	}
	out := make([]int32, len(vs))
	for i, v := range vs {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, errors.Errorf("value %d at index %d overflows int32", v, i)
		}
		out[i] = int32(v)
	}
	return out, nil
}

func int32sToInt64s(vs []int32) []int64 {
	if vs == nil {
		return nil
	}
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = int64(v)
	}
	return out
}

// MarshalBinary encodes c in the protobuf binary wire format.
func (c LeapCatalog) MarshalBinary() ([]byte, error) {
	w, err := toWire(c)
	if err != nil {
		return nil, errors.WithMessage(err, "catalog: marshal binary")
	}
	return catalogwire.Marshal(w), nil
}

// UnmarshalBinary decodes a protobuf-encoded catalog.
func UnmarshalBinary(b []byte) (LeapCatalog, error) {
	w, err := catalogwire.Unmarshal(b)
	if err != nil {
		return LeapCatalog{}, errors.WithMessage(err, "catalog: unmarshal binary")
	}
	return fromWire(w)
}
