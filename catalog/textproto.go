package catalog

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MarshalText renders c in a line-oriented textproto form, one
// repeated field value per line, mirroring protoc's text_format
// output for a message with no nested submessages.
func (c LeapCatalog) MarshalText() []byte {
	var b strings.Builder
	for _, v := range c.PositiveLeaps {
		fmt.Fprintf(&b, "positive_leaps: %d\n", v)
	}
	for _, v := range c.NegativeLeaps {
		fmt.Fprintf(&b, "negative_leaps: %d\n", v)
	}
	fmt.Fprintf(&b, "end_jdn: %d\n", c.EndJDN)
	return []byte(b.String())
}

// UnmarshalText parses the textproto form produced by MarshalText.
// Unknown field names, malformed values, or a missing end_jdn are
// reported as errors rather than silently ignored.
func UnmarshalText(b []byte) (LeapCatalog, error) {
	var c LeapCatalog
	haveEnd := false

	sc := bufio.NewScanner(strings.NewReader(string(b)))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, rawVal, ok := strings.Cut(line, ":")
		if !ok {
			return LeapCatalog{}, errors.Errorf("catalog: textproto line %d: missing ':' in %q", lineNo, line)
		}
		name = strings.TrimSpace(name)
		val, err := strconv.ParseInt(strings.TrimSpace(rawVal), 10, 64)
		if err != nil {
			return LeapCatalog{}, errors.Wrapf(err, "catalog: textproto line %d: parsing value for %q", lineNo, name)
		}
		switch name {
		case "positive_leaps":
			c.PositiveLeaps = append(c.PositiveLeaps, val)
		case "negative_leaps":
			c.NegativeLeaps = append(c.NegativeLeaps, val)
		case "end_jdn":
			c.EndJDN = val
			haveEnd = true
		default:
			return LeapCatalog{}, errors.Errorf("catalog: textproto line %d: unknown field %q", lineNo, name)
		}
	}
	if err := sc.Err(); err != nil {
		return LeapCatalog{}, errors.Wrap(err, "catalog: scanning textproto")
	}
	if !haveEnd {
		return LeapCatalog{}, errors.New("catalog: textproto missing required field end_jdn")
	}
	return c, nil
}
