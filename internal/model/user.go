package model

import "time"

// User 目前登入的使用者；認證本身由外部提供，這裡只保存使用者紀錄
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
