package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Duration is how long a tour runs. It travels as {"hours": 2, "minutes": 30}
// both in request bodies and in the tours.duration jsonb column.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func (d Duration) Value() (driver.Value, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode tour duration: %w", err)
	}
	return string(raw), nil
}

func (d *Duration) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Duration{}
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("tour duration: cannot scan %T", value)
	}
}

func (d Duration) ToDuration() time.Duration {
	return time.Duration(d.Hours)*time.Hour + time.Duration(d.Minutes)*time.Minute
}

// Valid rejects negative parts and minute counts of an hour or more.
func (d Duration) Valid() bool {
	return d.Hours >= 0 && d.Minutes >= 0 && d.Minutes < 60
}

func (d Duration) String() string {
	return fmt.Sprintf("%dh%02dm", d.Hours, d.Minutes)
}
