package tools

import (
	"agentlab/pkg/logger"
)

// Deps gathers the shared dependencies handed to every tool constructor.
type Deps struct {
	Log *logger.Logger

	// VectorStoreID identifies the document store used by search_documents.
	VectorStoreID string

	// Users resolves the active user for the account tools.
	Users *UserDirectory
}

// NewDeps builds tool dependencies with a child logger.
func NewDeps(log *logger.Logger, vectorStoreID string, users *UserDirectory) Deps {
	if users == nil {
		users = DefaultUserDirectory()
	}
	return Deps{
		Log:           log.With("component", "tools"),
		VectorStoreID: vectorStoreID,
		Users:         users,
	}
}
