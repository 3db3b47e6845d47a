package mediator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/application/logging"
	"github.com/kibahcorps/schedule1-go/internal/application/mediator"
)

type pingQuery struct{ Message string }

type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.entries = append(l.entries, level+" "+message)
}

func TestMediator_SendDispatchesByType(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	err := mediator.RegisterHandler[*pingQuery](m, mediator.HandlerFunc(func(ctx context.Context, r mediator.Request) (mediator.Response, error) {
		return "pong: " + r.(*pingQuery).Message, nil
	}))
	require.NoError(t, err)

	// Act
	response, err := m.Send(context.Background(), &pingQuery{Message: "hi"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong: hi", response)
}

func TestMediator_RejectsDuplicatesAndUnknown(t *testing.T) {
	m := mediator.NewMediator()
	handler := mediator.HandlerFunc(func(ctx context.Context, r mediator.Request) (mediator.Response, error) { return nil, nil })

	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, handler))
	assert.Error(t, mediator.RegisterHandler[*pingQuery](m, handler))

	_, err := m.Send(context.Background(), struct{}{})
	assert.Error(t, err)

	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	var trace []string
	wrap := func(name string) mediator.Middleware {
		return func(ctx context.Context, r mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			trace = append(trace, name+">")
			resp, err := next(ctx, r)
			trace = append(trace, "<"+name)
			return resp, err
		}
	}
	m.Use(wrap("outer"))
	m.Use(wrap("inner"))
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, mediator.HandlerFunc(func(ctx context.Context, r mediator.Request) (mediator.Response, error) {
		trace = append(trace, "handler")
		return nil, nil
	})))

	// Act
	_, err := m.Send(context.Background(), &pingQuery{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer>", "inner>", "handler", "<inner", "<outer"}, trace)
}

func TestLoggingMiddleware(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	m.Use(mediator.LoggingMiddleware())
	boom := errors.New("boom")
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, mediator.HandlerFunc(func(ctx context.Context, r mediator.Request) (mediator.Response, error) {
		if r.(*pingQuery).Message == "fail" {
			return nil, boom
		}
		return "ok", nil
	})))
	logger := &recordingLogger{}
	ctx := logging.WithLogger(context.Background(), logger)

	// Act
	_, okErr := m.Send(ctx, &pingQuery{Message: "fine"})
	_, failErr := m.Send(ctx, &pingQuery{Message: "fail"})

	// Assert
	assert.NoError(t, okErr)
	assert.ErrorIs(t, failErr, boom)
	assert.Equal(t, []string{"DEBUG request handled", "WARNING request failed"}, logger.entries)
}

func TestContextLoggerMiddleware(t *testing.T) {
	// Arrange
	fallback := &recordingLogger{}
	explicit := &recordingLogger{}
	m := mediator.NewMediator()
	m.Use(mediator.ContextLoggerMiddleware(fallback))
	m.Use(mediator.LoggingMiddleware())
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, mediator.HandlerFunc(func(ctx context.Context, r mediator.Request) (mediator.Response, error) {
		return "ok", nil
	})))

	// Act
	_, err1 := m.Send(context.Background(), &pingQuery{})
	_, err2 := m.Send(logging.WithLogger(context.Background(), explicit), &pingQuery{})

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, []string{"DEBUG request handled"}, fallback.entries)
	assert.Equal(t, []string{"DEBUG request handled"}, explicit.entries)
}
