package temporal

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp wraps time.Time with RFC3339 JSON encoding and day-level
// comparison helpers.
type Timestamp struct {
	time.Time
}

func (t Timestamp) SameDay(then time.Time) bool {
	a := t.Local()
	b := then.Local()
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	t.Time = parsed.Local()
	return nil
}

func (t Timestamp) String() string {
	return t.Format(time.RFC3339)
}
