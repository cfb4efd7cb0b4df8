package services

import (
	"encoding/json"
	"net/url"
)

// ParseInitDataUser extracts the Telegram user id embedded in a mini-app
// initData string (URL-encoded pairs where "user" holds a JSON object).
// Returns 0 when the id cannot be recovered; callers treat 0 as anonymous
// rather than failing the request.
func ParseInitDataUser(initData string) int64 {
	vals, err := url.ParseQuery(initData)
	if err != nil {
		return 0
	}
	raw := vals.Get("user")
	if raw == "" {
		return 0
	}
	var u struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return 0
	}
	return u.ID
}
