package smeartai

import (
	"fmt"
	"strings"
)

// DebugString renders lt as the expiration header followed by each
// segment entry in descending order: its UTC time, TAI time, smear
// direction, and the running TAI-UTC offset (10 s at the modern UTC
// epoch, adjusted by each entry's smear going forward).
func (lt *LeapTable) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "expiration: %s\n", FormatUTCTime(lt.Expiration()))

	offsets := make([]int64, len(lt.entries))
	offsets[len(lt.entries)-1] = 10
	for i := len(lt.entries) - 2; i >= 0; i-- {
		offsets[i] = offsets[i+1] + int64(lt.entries[i].smear)
	}

	for i, e := range lt.entries {
		fmt.Fprintf(&b, "%s  %s  smear=%+d  tai-utc=%ds\n",
			FormatUTCTime(e.utc), FormatTaiTime(e.tai), e.smear, offsets[i])
	}
	return b.String()
}
