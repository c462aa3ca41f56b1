package repository

import (
	"callcenter-service/domain/model"
)

// Call is the accessor for calls.
type Call interface {
	Generic[model.Call, int64]
	Paged[model.Call]
	AgentReferrer
}
