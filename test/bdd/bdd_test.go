package bdd

import (
	"testing"

	"github.com/cucumber/godog"

	"github.com/kibahcorps/schedule1-go/test/bdd/steps"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// NOTE: MixingScenario registered FIRST so its "the effects should be" step
	// takes precedence for valuation.feature as well
	steps.InitializeMixingScenario(sc)
	steps.InitializeSearchScenario(sc)
	steps.InitializeDealerScenario(sc)
	steps.InitializeCookbookScenario(sc)
}
