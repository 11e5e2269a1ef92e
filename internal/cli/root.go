package cli

import (
	"github.com/ariseapp/arise/internal/store"
	"github.com/ariseapp/arise/internal/suggest"
)

// Context is passed to every command by kong.
type Context struct {
	Store   *store.Store
	Planner *suggest.Planner
}
