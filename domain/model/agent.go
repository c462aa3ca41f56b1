package model

// AgentStatus is the availability of an agent.
type AgentStatus string

const (
	AgentStatusAvailable AgentStatus = "Available"
	AgentStatusBusy      AgentStatus = "Busy"
	AgentStatusOffline   AgentStatus = "Offline"
)

// Valid reports whether s is a known agent status.
func (s AgentStatus) Valid() bool {
	switch s {
	case AgentStatusAvailable, AgentStatusBusy, AgentStatusOffline:
		return true
	}
	return false
}

// Agent is a call-center operator. Its key is supplied by the caller.
type Agent struct {
	ID             int64       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name           string      `gorm:"type:varchar(255);not null" json:"name"`
	Email          string      `gorm:"type:varchar(255);not null" json:"email"`
	PhoneExtension string      `gorm:"type:varchar(32)" json:"phone_extension"`
	Status         AgentStatus `gorm:"type:varchar(16);not null" json:"status"`
}

func (Agent) TableName() string { return "agents" }

func (a Agent) PrimaryKey() int64 { return a.ID }

// AgentRemoval reports a completed agent deletion. Cleared maps each
// referrer name to the number of references it released.
type AgentRemoval struct {
	AgentID int64            `json:"agent_id"`
	Cleared map[string]int64 `json:"cleared"`
}
