package entity

import (
	"time"
)

// SaleStatus is the payment state of a sale.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pendiente"
	SaleStatusPaid      SaleStatus = "pagado"
	SaleStatusCancelled SaleStatus = "cancelado"
)

// IsValid reports whether s is a known status.
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusPending, SaleStatusPaid, SaleStatusCancelled:
		return true
	default:
		return false
	}
}

// Sale is a sale registered by a user, optionally linked to a client.
type Sale struct {
	ID          string     `json:"id" firestore:"-"`
	ClientID    string     `json:"client_id,omitempty" firestore:"clienteId"`
	Description string     `json:"description" firestore:"descripcion"`
	Total       float64    `json:"total" firestore:"total"`
	Status      SaleStatus `json:"status" firestore:"estado"`
	Date        string     `json:"date,omitempty" firestore:"fecha"`
	Time        string     `json:"time,omitempty" firestore:"hora"`
	UserID      string     `json:"user_id" firestore:"userId"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
}

// SalePatch carries the fields of a sale update. Nil fields are left unchanged.
type SalePatch struct {
	ClientID    *string     `json:"client_id,omitempty"`
	Description *string     `json:"description,omitempty"`
	Total       *float64    `json:"total,omitempty"`
	Status      *SaleStatus `json:"status,omitempty"`
	Date        *string     `json:"date,omitempty"`
	Time        *string     `json:"time,omitempty"`
}

// Apply copies the supplied fields onto s.
func (p *SalePatch) Apply(s *Sale) {
	if p.ClientID != nil {
		s.ClientID = *p.ClientID
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Total != nil {
		s.Total = *p.Total
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.Time != nil {
		s.Time = *p.Time
	}
}
