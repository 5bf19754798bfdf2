package commands

import "github.com/doeshing/logan/internal/app"

// ContainerFunc returns the container built for the current invocation.
type ContainerFunc func() *app.Container

// Error messages
const (
	ErrContainerUnavailable = "logan is not initialized for this command"
)

// Success messages
const (
	MsgNoActions     = "No actions registered."
	MsgCacheCleared  = "Cache cleared."
	MsgCacheEmpty    = "Cache is empty."
	MsgInitCompleted = "Logan root ready at %s\n"
)
