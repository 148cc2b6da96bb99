package domain

import "time"

// SiteSetting is one key/value row of site configuration
// (contact phone, address, social links and so on).
type SiteSetting struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key" gorm:"uniqueIndex;column:key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Settings is the resolved key/value map. It is loaded once per session
// and passed explicitly to whatever needs it; there is no global cache.
type Settings map[string]string

// Get returns the value for key, or def when the key is absent or empty.
func (s Settings) Get(key, def string) string {
	if v := s[key]; v != "" {
		return v
	}
	return def
}
