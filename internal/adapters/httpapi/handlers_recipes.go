package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	recipeCommands "github.com/kibahcorps/schedule1-go/internal/application/recipes/commands"
	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
)

type mixRequest struct {
	Product string   `json:"product"`
	Mixers  []string `json:"mixers"`
}

func (in mixRequest) validate() string {
	if strings.TrimSpace(in.Product) == "" {
		return "product is required"
	}
	return ""
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &recipeQueries.ListProductsQuery{})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": resp.(*recipeQueries.ListProductsResponse).Products})
}

func (s *Server) handleListMixers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &recipeQueries.ListMixersQuery{})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"mixers": resp.(*recipeQueries.ListMixersResponse).Mixers})
}

func (s *Server) handleListEffects(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &recipeQueries.ListEffectsQuery{})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"effects": resp.(*recipeQueries.ListEffectsResponse).Effects})
}

func (s *Server) handleResolveEffects(w http.ResponseWriter, r *http.Request) {
	var in mixRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := in.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	resp, err := s.mediator.Send(r.Context(), &recipeQueries.ResolveEffectsQuery{Product: in.Product, Mixers: in.Mixers})
	if err != nil {
		writeFailure(w, err)
		return
	}
	out := resp.(*recipeQueries.ResolveEffectsResponse)
	writeJSON(w, http.StatusOK, map[string]any{
		"product":        out.Product,
		"effects":        out.Effects,
		"known_product":  out.KnownProduct,
		"ignored_mixers": out.IgnoredMixers,
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var in mixRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := in.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	resp, err := s.mediator.Send(r.Context(), &recipeQueries.EvaluateRecipeQuery{Product: in.Product, Mixers: in.Mixers})
	if err != nil {
		writeFailure(w, err)
		return
	}
	out := resp.(*recipeQueries.EvaluateRecipeResponse)
	writeJSON(w, http.StatusOK, map[string]any{
		"recipe":         out.Recipe,
		"ignored_mixers": out.IgnoredMixers,
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Mixes []recipeQueries.MixInput `json:"mixes"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(in.Mixes) == 0 {
		writeError(w, http.StatusBadRequest, "at least one mix is required")
		return
	}

	resp, err := s.mediator.Send(r.Context(), &recipeQueries.CompareMixesQuery{Mixes: in.Mixes})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comparisons": resp.(*recipeQueries.CompareMixesResponse).Comparisons})
}

func (s *Server) handleBatchProfit(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Product string   `json:"product"`
		Mixers  []string `json:"mixers"`
		Batches int      `json:"batches"`
		Name    string   `json:"name"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.mediator.Send(r.Context(), &recipeQueries.BatchProfitQuery{
		Product:    in.Product,
		Mixers:     in.Mixers,
		Batches:    in.Batches,
		RecipeName: in.Name,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.(*recipeQueries.BatchProfitResponse).Batch)
}

func (s *Server) handlePredefined(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &recipeQueries.EvaluatePredefinedQuery{})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recipes": resp.(*recipeQueries.EvaluatePredefinedResponse).Recipes})
}

func (s *Server) handleTopRecipes(w http.ResponseWriter, r *http.Request) {
	topN, err := intParam(r, "top_n")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	maxMixers, err := intParam(r, "max_mixers")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.mediator.Send(r.Context(), &recipeQueries.TopRecipesQuery{
		Product:   chi.URLParam(r, "product"),
		TopN:      topN,
		MaxMixers: maxMixers,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	out := resp.(*recipeQueries.TopRecipesResponse)
	writeJSON(w, http.StatusOK, map[string]any{
		"product":    out.Product,
		"top_n":      out.TopN,
		"max_mixers": out.MaxMixers,
		"cached":     out.Cached,
		"recipes":    out.Recipes,
	})
}

func (s *Server) handleTopAllProducts(w http.ResponseWriter, r *http.Request) {
	topN, err := intParam(r, "top_n")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	maxMixers, err := intParam(r, "max_mixers")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.mediator.Send(r.Context(), &recipeQueries.TopRecipesAllProductsQuery{TopN: topN, MaxMixers: maxMixers})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": resp.(*recipeQueries.TopRecipesAllProductsResponse).Products})
}

func (s *Server) handleListSaved(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &recipeQueries.ListSavedRecipesQuery{})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recipes": resp.(*recipeQueries.ListSavedRecipesResponse).Recipes})
}

func (s *Server) handleGetSaved(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &recipeQueries.GetSavedRecipeQuery{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.(*recipeQueries.GetSavedRecipeResponse).Recipe)
}

func (s *Server) handleSaveRecipe(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name    string   `json:"name"`
		Product string   `json:"product"`
		Mixers  []string `json:"mixers"`
		Notes   string   `json:"notes"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.mediator.Send(r.Context(), &recipeCommands.SaveRecipeCommand{
		Name:    in.Name,
		Product: in.Product,
		Mixers:  in.Mixers,
		Notes:   in.Notes,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp.(*recipeCommands.SaveRecipeResponse).Recipe)
}

func (s *Server) handleDeleteSaved(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &recipeCommands.DeleteSavedRecipeCommand{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": resp.(*recipeCommands.DeleteSavedRecipeResponse).ID})
}
