package entity

import "time"

// IdempotencyKey caches the response of a mutating action so a retried
// submission replays the original result instead of posting twice.
type IdempotencyKey struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Key          string    `gorm:"size:255;uniqueIndex;not null" json:"key"`
	Action       string    `gorm:"size:100;not null" json:"action"`
	ResponseCode int       `gorm:"not null" json:"response_code"`
	ResponseBody string    `gorm:"type:text" json:"response_body"`
	ExpiresAt    time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsExpired returns true once the cached response should no longer be replayed.
func (k *IdempotencyKey) IsExpired() bool {
	return time.Now().After(k.ExpiresAt)
}

// TableName returns the table name for the IdempotencyKey model
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}
