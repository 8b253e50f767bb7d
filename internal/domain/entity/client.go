package entity

import (
	"time"
)

// Client is a customer contact. Clients are shared by all users.
type Client struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"nombre"`
	Email     string    `json:"email,omitempty" firestore:"email"`
	Phone     string    `json:"phone,omitempty" firestore:"telefono"`
	Note      string    `json:"note,omitempty" firestore:"nota"`
	AvatarURL string    `json:"avatar_url,omitempty" firestore:"avatarUrl"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// ClientPatch carries the fields of a client update. Nil fields are left unchanged.
type ClientPatch struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Note      *string `json:"note,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Apply copies the supplied fields onto c.
func (p *ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Note != nil {
		c.Note = *p.Note
	}
	if p.AvatarURL != nil {
		c.AvatarURL = *p.AvatarURL
	}
}
