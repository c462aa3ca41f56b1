package model

import "time"

// TicketStatus is the workflow state of a ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "InProgress"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusClosed     TicketStatus = "Closed"
)

// Valid reports whether s is a known ticket status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority orders tickets by urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
)

// Valid reports whether p is a known ticket priority.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// Ticket is a support case raised for a customer. CreatedAt and UpdatedAt
// are caller data and are never stamped by the store.
type Ticket struct {
	ID          int64          `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CustomerID  string         `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	AgentID     *int64         `gorm:"index;default:null" json:"agent_id"`
	Status      TicketStatus   `gorm:"type:varchar(16);not null" json:"status"`
	Priority    TicketPriority `gorm:"type:varchar(16);not null" json:"priority"`
	CreatedAt   time.Time      `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime:false" json:"updated_at"`
	Description string         `gorm:"type:text" json:"description"`
	Resolution  *string        `gorm:"type:text;default:null" json:"resolution"`
}

func (Ticket) TableName() string { return "tickets" }

func (t Ticket) PrimaryKey() int64 { return t.ID }

func (t Ticket) AssignedAgent() *int64 { return t.AgentID }
