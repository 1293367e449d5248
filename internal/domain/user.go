package domain

import "time"

// User is a journal member. Accounts are created on first OAuth login;
// TotalRecords and AvgRating are denormalized login-time statistics
// recomputed from visible records.
type User struct {
	UserID       string    `gorm:"type:text;primaryKey" json:"user_id"`
	Username     string    `gorm:"type:text" json:"username"`
	Nickname     string    `gorm:"type:text" json:"nickname"`
	Email        string    `gorm:"type:text" json:"email,omitempty"`
	LoginType    string    `gorm:"type:text" json:"login_type"`
	Keyword      string    `gorm:"type:text" json:"keyword,omitempty"`
	TotalRecords int       `json:"total_records"`
	AvgRating    float64   `json:"avg_rating"`
	LastLogin    time.Time `json:"last_login"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string {
	return "users"
}

// PreferredKeywords splits the comma-joined keyword column.
func (u *User) PreferredKeywords() []string {
	return splitKeywords(u.Keyword)
}
