package util

import (
	"time"
)

// Timestamp is a point in time rendered in São Paulo local time.
type Timestamp struct {
	time.Time
}

var saoPauloLocation *time.Location

func init() {
	var err error
	saoPauloLocation, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPauloLocation = time.FixedZone("BRT", -3*60*60)
	}
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.In(saoPauloLocation)}
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ts.In(saoPauloLocation).Format(time.RFC3339Nano) + `"`), nil
}
