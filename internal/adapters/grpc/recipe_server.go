package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
)

type evaluateRequest struct {
	Product string   `json:"product"`
	Mixers  []string `json:"mixers"`
}

type evaluateResponse struct {
	Recipe        *types.RecipeDTO        `json:"recipe"`
	IgnoredMixers []types.IgnoredMixerDTO `json:"ignored_mixers"`
}

type topRecipesRequest struct {
	Product   string `json:"product"`
	TopN      int    `json:"top_n"`
	MaxMixers int    `json:"max_mixers"`
}

// TopRecipesResult is the decoded TopRecipes response
type TopRecipesResult struct {
	Product   string             `json:"product"`
	TopN      int                `json:"top_n"`
	MaxMixers int                `json:"max_mixers"`
	Cached    bool               `json:"cached"`
	Recipes   []*types.RecipeDTO `json:"recipes"`
}

// recipeServiceImpl bridges RecipeService calls to the mediator
type recipeServiceImpl struct {
	mediator common.Mediator
}

// NewRecipeServiceImpl creates the service implementation (exported for testing)
func NewRecipeServiceImpl(mediator common.Mediator) RecipeServiceServer {
	return &recipeServiceImpl{mediator: mediator}
}

func (s *recipeServiceImpl) Evaluate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req evaluateRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if strings.TrimSpace(req.Product) == "" {
		return nil, status.Error(codes.InvalidArgument, "product is required")
	}

	resp, err := s.mediator.Send(ctx, &recipeQueries.EvaluateRecipeQuery{Product: req.Product, Mixers: req.Mixers})
	if err != nil {
		return nil, toStatus(err)
	}
	out := resp.(*recipeQueries.EvaluateRecipeResponse)

	return toStruct(evaluateResponse{Recipe: out.Recipe, IgnoredMixers: out.IgnoredMixers})
}

func (s *recipeServiceImpl) TopRecipes(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req topRecipesRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if strings.TrimSpace(req.Product) == "" {
		return nil, status.Error(codes.InvalidArgument, "product is required")
	}

	resp, err := s.mediator.Send(ctx, &recipeQueries.TopRecipesQuery{
		Product:   req.Product,
		TopN:      req.TopN,
		MaxMixers: req.MaxMixers,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	out := resp.(*recipeQueries.TopRecipesResponse)

	return toStruct(TopRecipesResult{
		Product:   out.Product,
		TopN:      out.TopN,
		MaxMixers: out.MaxMixers,
		Cached:    out.Cached,
		Recipes:   out.Recipes,
	})
}

// toStatus maps application errors onto gRPC status codes
func toStatus(err error) error {
	var validation *shared.ValidationError
	switch {
	case catalog.IsUnknownProduct(err):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &validation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// RecipeServer serves schedule1.RecipeService on a TCP listener
type RecipeServer struct {
	mediator common.Mediator
	listener net.Listener
	log      *slog.Logger
}

// NewRecipeServer listens on address (host:port)
func NewRecipeServer(mediator common.Mediator, address string, logger *slog.Logger) (*RecipeServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	return NewRecipeServerWithListener(mediator, listener, logger), nil
}

// NewRecipeServerWithListener serves on an existing listener
func NewRecipeServerWithListener(mediator common.Mediator, listener net.Listener, logger *slog.Logger) *RecipeServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecipeServer{
		mediator: mediator,
		listener: listener,
		log:      logger,
	}
}

// Addr returns the address the server is bound to
func (s *RecipeServer) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve blocks until ctx is cancelled or the server fails, stopping gracefully
// on cancellation
func (s *RecipeServer) Serve(ctx context.Context) error {
	grpcServer := grpc.NewServer()
	RegisterRecipeServiceServer(grpcServer, NewRecipeServiceImpl(s.mediator))

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("grpc recipe service listening", "addr", s.listener.Addr().String())
		if err := grpcServer.Serve(s.listener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.log.Info("stopping grpc recipe service")
		grpcServer.GracefulStop()
		return nil
	}
}
