package common

// Handlers import common for the mediator and logging vocabulary so that a
// query package depends on one application package instead of two.

import (
	"github.com/kibahcorps/schedule1-go/internal/application/logging"
	"github.com/kibahcorps/schedule1-go/internal/application/mediator"
)

// Mediator types
type (
	Request        = mediator.Request
	Response       = mediator.Response
	RequestHandler = mediator.RequestHandler
	HandlerFunc    = mediator.HandlerFunc
	Middleware     = mediator.Middleware
	Mediator       = mediator.Mediator
)

// Logger is the structured logger handlers write to
type Logger = logging.Logger

// Mediator functions
var (
	NewMediator = mediator.NewMediator
)

// RegisterHandler is generic and must be called from the mediator package:
// mediator.RegisterHandler[*MyQuery](m, handler)

// Logging functions
var (
	WithLogger        = logging.WithLogger
	LoggerFromContext = logging.LoggerFromContext
)
