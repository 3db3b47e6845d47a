package bootstrap

import (
	"context"
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/kibahcorps/schedule1-go/internal/adapters/cache"
	"github.com/kibahcorps/schedule1-go/internal/adapters/gamedata"
	adapterLogging "github.com/kibahcorps/schedule1-go/internal/adapters/logging"
	"github.com/kibahcorps/schedule1-go/internal/adapters/metrics"
	"github.com/kibahcorps/schedule1-go/internal/adapters/persistence"
	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/mediator"
	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/services"
	"github.com/kibahcorps/schedule1-go/internal/application/setup"
	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
	"github.com/kibahcorps/schedule1-go/internal/domain/mixing"
	"github.com/kibahcorps/schedule1-go/internal/domain/search"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/config"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/database"
)

// Options selects the optional parts of the application graph
type Options struct {
	// WithDatabase opens the database for saved recipes and dealer transactions
	WithDatabase bool

	// UnlockedMixers narrows the catalog to these mixers when non-empty
	UnlockedMixers []string

	// Logger overrides the logger built from cfg.Logging
	Logger *adapterLogging.ConsoleLogger
}

// App is the wired application: catalog, search, mediator and collaborators
type App struct {
	Config   *config.Config
	Logger   *adapterLogging.ConsoleLogger
	Catalog  *catalog.Catalog
	Engine   *valuation.Engine
	Finder   *services.RecipeFinder
	Mediator common.Mediator
	Dealers  dealer.Directory
	DB       *gorm.DB

	APIMetrics *metrics.APIMetricsCollector

	closers []io.Closer
}

// New builds the application graph from cfg
func New(cfg *config.Config, opts Options) (*App, error) {
	app := &App{Config: cfg}

	// 1. Logging
	if opts.Logger != nil {
		app.Logger = opts.Logger
	} else {
		logger, closer, err := adapterLogging.New(cfg.Logging)
		if err != nil {
			return nil, err
		}
		app.Logger = logger
		app.closers = append(app.closers, closer)
	}

	// 2. Metrics (collectors record into nothing when the registry is off)
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	} else {
		metrics.Registry = nil
	}
	searchMetrics := metrics.NewSearchMetricsCollector()
	requestMetrics := metrics.NewRequestMetricsCollector()
	app.APIMetrics = metrics.NewAPIMetricsCollector()
	for _, register := range []func() error{searchMetrics.Register, requestMetrics.Register, app.APIMetrics.Register} {
		if err := register(); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	// 3. Game data
	cat, err := gamedata.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		app.Close()
		return nil, err
	}
	if len(opts.UnlockedMixers) > 0 {
		cat = cat.WithMixers(opts.UnlockedMixers...)
	}
	app.Catalog = cat
	app.Engine = valuation.NewEngine(cat, mixing.NewEffectResolver(cfg.Search.Resolver, cat))
	app.Dealers = gamedata.NewDealerDirectory(cfg.Catalog.DealersPath)

	// 4. Search with optional memoization
	searcher := search.NewSearcher(app.Engine, search.Options{
		Workers:        cfg.Search.Workers,
		ProductWorkers: cfg.Search.ProductWorkers,
		BeamFactor:     cfg.Search.BeamFactor,
		Observer:       searchMetrics,
	})
	var recipeCache services.RecipeCache
	if cfg.Cache.Enabled {
		recipeCache = cache.NewRecipeCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}
	app.Finder = services.NewRecipeFinder(searcher, recipeCache, searchMetrics)

	// 5. Persistence
	var (
		savedRepo cookbook.Repository
		txRepo    dealer.TransactionRepository
	)
	if opts.WithDatabase {
		db, err := database.Open(&cfg.Database)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		savedRepo = persistence.NewGormSavedRecipeRepository(db)
		txRepo = persistence.NewGormDealerTransactionRepository(db)
	}

	// 6. Mediator
	med := common.NewMediator()
	med.Use(mediator.ContextLoggerMiddleware(app.Logger))
	med.Use(requestMetrics.Middleware())

	defaults := recipeQueries.SearchDefaults{TopN: cfg.Search.TopN, MaxMixers: cfg.Search.MaxMixers}
	registry := setup.NewHandlerRegistry(app.Finder, defaults, savedRepo, app.Dealers, txRepo, nil)
	if err := registry.RegisterAll(med); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}
	app.Mediator = med

	app.Logger.Log("DEBUG", "application wired", map[string]interface{}{
		"products": len(cat.Products()),
		"mixers":   len(cat.MixerNames()),
		"resolver": cfg.Search.Resolver,
		"cache":    cfg.Cache.Enabled,
		"database": opts.WithDatabase,
	})
	return app, nil
}

// Context returns ctx carrying the application logger
func (a *App) Context(ctx context.Context) context.Context {
	return common.WithLogger(ctx, a.Logger)
}

// Close releases the database and log file
func (a *App) Close() {
	if a.DB != nil {
		_ = database.Close(a.DB)
		a.DB = nil
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
