package messages

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout renders times like "Mon Oct 19 14:03:07 UTC 2026".
const DateLayout = "Mon Jan 02 15:04:05 MST 2006"

/*
+-----------------------------------+------+
|  date/time text (Layout)          | CRLF |
+-----------------------------------+------+

	No length prefix; the datagram boundary delimits the message.
*/
type Timestamp struct {
	Time time.Time
	// Layout defaults to DateLayout when empty.
	Layout string
}

func (ts *Timestamp) layout() string {
	if ts.Layout == "" {
		return DateLayout
	}
	return ts.Layout
}

func (ts *Timestamp) MarshalText() ([]byte, error) {
	if ts.Time.IsZero() {
		return nil, fmt.Errorf("timestamp has zero time")
	}
	return Text(ts.Time.Format(ts.layout())).MarshalText()
}

func (ts *Timestamp) UnmarshalText(b []byte) error {
	s := string(b)
	if !strings.HasSuffix(s, Terminator) {
		return fmt.Errorf("timestamp missing line terminator: %q", s)
	}
	t, err := time.Parse(ts.layout(), s[:len(s)-len(Terminator)])
	if err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	ts.Time = t
	return nil
}
