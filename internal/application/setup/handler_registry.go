package setup

import (
	"reflect"

	dealerCommands "github.com/kibahcorps/schedule1-go/internal/application/dealers/commands"
	dealerQueries "github.com/kibahcorps/schedule1-go/internal/application/dealers/queries"
	"github.com/kibahcorps/schedule1-go/internal/application/mediator"
	recipeCommands "github.com/kibahcorps/schedule1-go/internal/application/recipes/commands"
	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/services"
	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	finder    *services.RecipeFinder
	defaults  recipeQueries.SearchDefaults
	savedRepo cookbook.Repository
	dealers   dealer.Directory
	txRepo    dealer.TransactionRepository
	clock     shared.Clock
}

// NewHandlerRegistry creates a new handler registry with required dependencies.
// savedRepo, dealers and txRepo may be nil; the handlers that need them are then
// not registered.
func NewHandlerRegistry(
	finder *services.RecipeFinder,
	defaults recipeQueries.SearchDefaults,
	savedRepo cookbook.Repository,
	dealers dealer.Directory,
	txRepo dealer.TransactionRepository,
	clock shared.Clock,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		finder:    finder,
		defaults:  defaults,
		savedRepo: savedRepo,
		dealers:   dealers,
		txRepo:    txRepo,
		clock:     clock,
	}
}

type registration struct {
	request interface{}
	handler mediator.RequestHandler
}

func register(m mediator.Mediator, registrations []registration) error {
	for _, reg := range registrations {
		if err := m.Register(reflect.TypeOf(reg.request), reg.handler); err != nil {
			return err
		}
	}
	return nil
}

// RegisterRecipeHandlers registers the effect, valuation, search and catalog handlers
//
// This method registers:
//   - ResolveEffectsQuery, EvaluateRecipeQuery, CompareMixesQuery
//   - TopRecipesQuery, TopRecipesAllProductsQuery (through the caching RecipeFinder)
//   - ListProductsQuery, ListMixersQuery, ListEffectsQuery
//   - EvaluatePredefinedQuery, BatchProfitQuery
//   - saved recipe queries and commands when a repository is configured
func (r *HandlerRegistry) RegisterRecipeHandlers(m mediator.Mediator) error {
	engine := r.finder.Engine()
	catalogHandler := recipeQueries.NewListCatalogHandler(engine.Catalog())

	registrations := []registration{
		{&recipeQueries.ResolveEffectsQuery{}, recipeQueries.NewResolveEffectsHandler(engine)},
		{&recipeQueries.EvaluateRecipeQuery{}, recipeQueries.NewEvaluateRecipeHandler(engine)},
		{&recipeQueries.CompareMixesQuery{}, recipeQueries.NewCompareMixesHandler(engine)},
		{&recipeQueries.TopRecipesQuery{}, recipeQueries.NewTopRecipesHandler(r.finder, r.defaults)},
		{&recipeQueries.TopRecipesAllProductsQuery{}, recipeQueries.NewTopRecipesAllProductsHandler(r.finder, r.defaults)},
		{&recipeQueries.ListProductsQuery{}, catalogHandler},
		{&recipeQueries.ListMixersQuery{}, catalogHandler},
		{&recipeQueries.ListEffectsQuery{}, catalogHandler},
		{&recipeQueries.EvaluatePredefinedQuery{}, recipeQueries.NewEvaluatePredefinedHandler(engine)},
		{&recipeQueries.BatchProfitQuery{}, recipeQueries.NewBatchProfitHandler(engine)},
	}

	if r.savedRepo != nil {
		savedHandler := recipeQueries.NewSavedRecipesHandler(r.savedRepo, engine)
		registrations = append(registrations,
			registration{&recipeQueries.ListSavedRecipesQuery{}, savedHandler},
			registration{&recipeQueries.GetSavedRecipeQuery{}, savedHandler},
			registration{&recipeCommands.SaveRecipeCommand{}, recipeCommands.NewSaveRecipeHandler(r.savedRepo, engine, r.clock)},
			registration{&recipeCommands.DeleteSavedRecipeCommand{}, recipeCommands.NewDeleteSavedRecipeHandler(r.savedRepo)},
		)
	}

	return register(m, registrations)
}

// RegisterDealerHandlers registers dealer ranking, estimation and transaction handlers
//
// Ranking and estimation only need the dealer directory; the transaction
// handlers are registered when a transaction repository is configured.
func (r *HandlerRegistry) RegisterDealerHandlers(m mediator.Mediator) error {
	if r.dealers == nil {
		return nil
	}
	engine := r.finder.Engine()

	registrations := []registration{
		{&dealerQueries.RankDealersQuery{}, dealerQueries.NewRankDealersHandler(r.dealers, engine)},
		{&dealerQueries.EstimateDealerProfitQuery{}, dealerQueries.NewEstimateDealerProfitHandler(r.dealers, engine)},
	}

	if r.txRepo != nil {
		registrations = append(registrations,
			registration{&dealerQueries.ListDealerTransactionsQuery{}, dealerQueries.NewListDealerTransactionsHandler(r.dealers, r.txRepo)},
			registration{&dealerCommands.RecordDealerTransactionCommand{}, dealerCommands.NewRecordDealerTransactionHandler(r.dealers, r.txRepo, r.clock)},
		)
	}

	return register(m, registrations)
}

// RegisterAll registers every handler group and installs the logging middleware
func (r *HandlerRegistry) RegisterAll(m mediator.Mediator) error {
	m.Use(mediator.LoggingMiddleware())
	if err := r.RegisterRecipeHandlers(m); err != nil {
		return err
	}
	return r.RegisterDealerHandlers(m)
}
