package tool

import (
	"context"
	"encoding/json"
	"time"
)

// istFallback is used when the tzdata database is unavailable
// (common on Windows without the tzdata package).
var istFallback = time.FixedZone("IST", 5*3600+30*60)

// LocalTimeTool reports the current local date and time (IST).
type LocalTimeTool struct {
	now func() time.Time // injectable for tests
}

func NewLocalTimeTool() *LocalTimeTool {
	return &LocalTimeTool{now: time.Now}
}

func (t *LocalTimeTool) Name() string { return "get_local_time" }
func (t *LocalTimeTool) Description() string {
	return "Get the current local date and time. Always call this when asked about the date or time; never guess."
}

func (t *LocalTimeTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {}
	}`)
}

func (t *LocalTimeTool) Execute(_ context.Context, _ json.RawMessage) (*Result, error) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = istFallback
	}

	now := t.now().In(loc)
	return &Result{
		Output: now.Format("Today is Monday, 02 January 2006 and the time is 03:04 PM."),
	}, nil
}
