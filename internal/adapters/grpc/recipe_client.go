package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
)

// RecipeClient calls a remote schedule1.RecipeService
type RecipeClient struct {
	conn *grpc.ClientConn
}

// NewRecipeClient connects to address (host:port) without transport security
func NewRecipeClient(address string, opts ...grpc.DialOption) (*RecipeClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to recipe service: %w", err)
	}
	return &RecipeClient{conn: conn}, nil
}

// Close closes the gRPC connection
func (c *RecipeClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Evaluate values a single mix remotely
func (c *RecipeClient) Evaluate(ctx context.Context, product string, mixers []string) (*types.RecipeDTO, []types.IgnoredMixerDTO, error) {
	in, err := toStruct(evaluateRequest{Product: product, Mixers: mixers})
	if err != nil {
		return nil, nil, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, evaluateMethod, in, out); err != nil {
		return nil, nil, fmt.Errorf("evaluate failed: %w", err)
	}

	var resp evaluateResponse
	if err := fromStruct(out, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Recipe, resp.IgnoredMixers, nil
}

// TopRecipes runs a recipe search on the remote service
func (c *RecipeClient) TopRecipes(ctx context.Context, product string, topN, maxMixers int) (*TopRecipesResult, error) {
	in, err := toStruct(topRecipesRequest{Product: product, TopN: topN, MaxMixers: maxMixers})
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, topRecipesMethod, in, out); err != nil {
		return nil, fmt.Errorf("top recipes failed: %w", err)
	}

	var result TopRecipesResult
	if err := fromStruct(out, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
