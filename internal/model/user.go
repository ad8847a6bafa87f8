package model

import "time"

// User owns schedulable items and carries the contact points reminders
// can be delivered to.
type User struct {
	ID             uint `gorm:"primaryKey"`
	Name           string
	Email          string `gorm:"index"`
	Phone          string
	TelegramChatID int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Contact is the delivery-address view of a user handed to notification
// gateways. Any subset of the fields may be empty.
type Contact struct {
	Name           string
	Email          string
	Phone          string
	TelegramChatID int64
}

// Contact extracts the user's delivery addresses.
func (u User) Contact() Contact {
	return Contact{
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		TelegramChatID: u.TelegramChatID,
	}
}

// HasAny reports whether at least one delivery address is usable.
func (c Contact) HasAny() bool {
	return c.Email != "" || c.Phone != "" || c.TelegramChatID != 0
}
