package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// TimeLayout is the wire format for every generated timestamp. Second
// precision, no zone suffix, so CSV, JSON and DATETIME columns all carry
// the same text.
const TimeLayout = "2006-01-02T15:04:05"

type Timestamp struct {
	time.Time
}

// NewTimestamp truncates to the second so a serialized value parses back
// to an identical Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Second)}
}

func (t Timestamp) String() string {
	return t.Format(TimeLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimeLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(TimeLayout, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) Value() (driver.Value, error) {
	return t.Format(TimeLayout), nil
}
