package grpc_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpcAdapter "github.com/kibahcorps/schedule1-go/internal/adapters/grpc"
	"github.com/kibahcorps/schedule1-go/internal/application/common"
	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
	"github.com/kibahcorps/schedule1-go/internal/application/setup"
	"github.com/kibahcorps/schedule1-go/test/helpers"
)

func startServer(t *testing.T) *grpcAdapter.RecipeClient {
	t.Helper()

	registry := setup.NewHandlerRegistry(
		helpers.NewDefaultFinder(helpers.NewMockRecipeCache()),
		recipeQueries.DefaultSearchDefaults(),
		nil, nil, nil, nil,
	)
	med := common.NewMediator()
	require.NoError(t, registry.RegisterAll(med))

	listener := bufconn.Listen(1 << 20)
	server := grpcAdapter.NewRecipeServerWithListener(med, listener, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	client, err := grpcAdapter.NewRecipeClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRecipeService_Evaluate(t *testing.T) {
	// Arrange
	client := startServer(t)

	// Act
	recipe, ignored, err := client.Evaluate(context.Background(), "OG Kush", []string{"Cuke", "Glitter"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 50, recipe.MarketValue)
	assert.Equal(t, 4, recipe.TotalCost)
	assert.ElementsMatch(t, []string{"Calming", "Energizing"}, recipe.Effects)
	require.Len(t, ignored, 1)
	assert.Equal(t, "Glitter", ignored[0].Name)
}

func TestRecipeService_TopRecipes(t *testing.T) {
	client := startServer(t)

	result, err := client.TopRecipes(context.Background(), "OG Kush", 1, 1)

	require.NoError(t, err)
	assert.Equal(t, "OG Kush", result.Product)
	require.Len(t, result.Recipes, 1)
	assert.Equal(t, []string{"Battery"}, result.Recipes[0].Mixers)
	assert.Equal(t, 65, result.Recipes[0].MarketValue)
	assert.Equal(t, 10, result.Recipes[0].TotalCost)
}

func TestRecipeService_ErrorCodes(t *testing.T) {
	client := startServer(t)

	_, err := client.TopRecipes(context.Background(), "Oregano", 1, 1)
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, _, err = client.Evaluate(context.Background(), "", nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
