package entity

import (
	"time"
)

// UserDevice represents a user's device registered for reminder pushes.
type UserDevice struct {
	ID        string    `json:"id" firestore:"-"`               // Device record identifier.
	UserID    string    `json:"user_id" firestore:"userId"`     // Identity-provider user that owns the device.
	FCMToken  string    `json:"fcm_token" firestore:"fcmToken"` // Firebase Cloud Messaging token.
	DeviceID  string    `json:"device_id" firestore:"deviceId"` // Unique device identifier from the client.
	Platform  string    `json:"platform" firestore:"platform"`  // ios or android.
	IsActive  bool      `json:"is_active" firestore:"isActive"` // Inactive devices receive no pushes.
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
