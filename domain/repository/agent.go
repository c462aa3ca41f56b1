package repository

import (
	"context"

	"callcenter-service/domain/model"
)

// Agent is the accessor for agents. Deleting an agent clears every weak
// reference to it before the agent row is removed.
type Agent interface {
	Generic[model.Agent, int64]
	// Remove deletes the agent and reports how many references each
	// registered AgentReferrer released. Delete is Remove without the report.
	Remove(ctx context.Context, id int64) (*model.AgentRemoval, error)
}

// AgentReferrer is a collection holding optional references to agents.
type AgentReferrer interface {
	// ReferrerName identifies the collection in removal reports.
	ReferrerName() string
	// ClearAgent sets every reference to agentID to null and returns the
	// number of records changed. It joins the transaction carried by ctx.
	ClearAgent(ctx context.Context, agentID int64) (int64, error)
}
