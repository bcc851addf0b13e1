package catalog

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// jsonCatalog mirrors protobuf-JSON's camelCase field-name mapping for
// the LeapCatalog schema.
type jsonCatalog struct {
	PositiveLeaps []int64 `json:"positiveLeaps,omitempty"`
	NegativeLeaps []int64 `json:"negativeLeaps,omitempty"`
	EndJDN        *int64  `json:"endJdn"`
}

// MarshalJSON renders c using protobuf-JSON's camelCase field naming.
func (c LeapCatalog) MarshalJSON() ([]byte, error) {
	endJDN := c.EndJDN
	b, err := json.MarshalIndent(jsonCatalog{
		PositiveLeaps: c.PositiveLeaps,
		NegativeLeaps: c.NegativeLeaps,
		EndJDN:        &endJDN,
	}, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "catalog: marshal json")
	}
	return b, nil
}

// UnmarshalJSONCatalog parses the JSON form produced by MarshalJSON. A
// missing endJdn key, like a missing end_jdn field in the binary and
// textproto forms, is rejected rather than silently defaulted to zero.
func UnmarshalJSONCatalog(b []byte) (LeapCatalog, error) {
	var jc jsonCatalog
	if err := json.Unmarshal(b, &jc); err != nil {
		return LeapCatalog{}, errors.Wrap(err, "catalog: unmarshal json")
	}
	if jc.EndJDN == nil {
		return LeapCatalog{}, errors.New("catalog: json missing required field endJdn")
	}
	return LeapCatalog{
		PositiveLeaps: jc.PositiveLeaps,
		NegativeLeaps: jc.NegativeLeaps,
		EndJDN:        *jc.EndJDN,
	}, nil
}
