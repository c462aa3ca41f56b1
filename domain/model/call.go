package model

import "time"

// CallStatus is the lifecycle state of a call.
type CallStatus string

const (
	CallStatusQueued     CallStatus = "Queued"
	CallStatusInProgress CallStatus = "InProgress"
	CallStatusCompleted  CallStatus = "Completed"
	CallStatusDropped    CallStatus = "Dropped"
)

// Valid reports whether s is a known call status.
func (s CallStatus) Valid() bool {
	switch s {
	case CallStatusQueued, CallStatusInProgress, CallStatusCompleted, CallStatusDropped:
		return true
	}
	return false
}

// Call is a single customer call. AgentID is a weak reference that is
// cleared when the agent is deleted. CustomerID is not maintained.
type Call struct {
	ID         int64      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CustomerID string     `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	AgentID    *int64     `gorm:"index;default:null" json:"agent_id"`
	StartTime  time.Time  `gorm:"not null" json:"start_time"`
	EndTime    *time.Time `gorm:"default:null" json:"end_time"`
	Status     CallStatus `gorm:"type:varchar(16);not null" json:"status"`
	Notes      string     `gorm:"type:text" json:"notes"`
}

func (Call) TableName() string { return "calls" }

func (c Call) PrimaryKey() int64 { return c.ID }

func (c Call) AssignedAgent() *int64 { return c.AgentID }
