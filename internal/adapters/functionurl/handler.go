// Package functionurl serves recipe queries behind an AWS Lambda function URL.
//
// GET requests read product, top_n and max_mixers from the query string and
// return the top recipes. Adding mixers (comma-separated) values that one mix
// instead. POST requests carry the same fields as a JSON body.
package functionurl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type request struct {
	Product   string
	Mixers    []string
	HasMixers bool
	TopN      int
	MaxMixers int
}

// Handler answers function URL invocations through the mediator
type Handler struct {
	mediator common.Mediator
}

// NewHandler creates a new handler
func NewHandler(mediator common.Mediator) *Handler {
	return &Handler{mediator: mediator}
}

// Handle is the lambda.Start entrypoint
func (h *Handler) Handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	var (
		req request
		err error
	)
	switch event.RequestContext.HTTP.Method {
	case "", http.MethodGet:
		req, err = fromQuery(event.QueryStringParameters)
	case http.MethodPost:
		req, err = fromBody(event.Body, event.IsBase64Encoded)
	default:
		return errResp(http.StatusMethodNotAllowed, "method not allowed")
	}
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	if req.Product == "" {
		return errResp(http.StatusBadRequest, "product is required")
	}

	if req.HasMixers {
		resp, err := h.mediator.Send(ctx, &recipeQueries.EvaluateRecipeQuery{Product: req.Product, Mixers: req.Mixers})
		if err != nil {
			return failure(err)
		}
		out := resp.(*recipeQueries.EvaluateRecipeResponse)
		return okResp(map[string]interface{}{
			"recipe":         out.Recipe,
			"ignored_mixers": out.IgnoredMixers,
		})
	}

	resp, err := h.mediator.Send(ctx, &recipeQueries.TopRecipesQuery{
		Product:   req.Product,
		TopN:      req.TopN,
		MaxMixers: req.MaxMixers,
	})
	if err != nil {
		return failure(err)
	}
	out := resp.(*recipeQueries.TopRecipesResponse)
	return okResp(map[string]interface{}{
		"product":    out.Product,
		"top_n":      out.TopN,
		"max_mixers": out.MaxMixers,
		"cached":     out.Cached,
		"recipes":    out.Recipes,
	})
}

func fromQuery(params map[string]string) (request, error) {
	req := request{Product: strings.TrimSpace(params["product"])}
	if raw, ok := params["mixers"]; ok {
		req.HasMixers = true
		for _, m := range strings.Split(raw, ",") {
			if m = strings.TrimSpace(m); m != "" {
				req.Mixers = append(req.Mixers, m)
			}
		}
	}

	var err error
	if req.TopN, err = intParam(params, "top_n"); err != nil {
		return request{}, err
	}
	if req.MaxMixers, err = intParam(params, "max_mixers"); err != nil {
		return request{}, err
	}
	return req, nil
}

func fromBody(body string, base64Encoded bool) (request, error) {
	if base64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return request{}, errors.New("invalid base64 body")
		}
		body = string(decoded)
	}
	if !gjson.Valid(body) {
		return request{}, errors.New("invalid JSON body")
	}

	parsed := gjson.Parse(body)
	req := request{
		Product:   strings.TrimSpace(parsed.Get("product").String()),
		TopN:      int(parsed.Get("top_n").Int()),
		MaxMixers: int(parsed.Get("max_mixers").Int()),
	}
	if mixers := parsed.Get("mixers"); mixers.Exists() {
		req.HasMixers = true
		for _, m := range mixers.Array() {
			req.Mixers = append(req.Mixers, m.String())
		}
	}
	return req, nil
}

func intParam(params map[string]string, name string) (int, error) {
	raw := strings.TrimSpace(params[name])
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}

func failure(err error) (events.LambdaFunctionURLResponse, error) {
	var validation *shared.ValidationError
	switch {
	case catalog.IsUnknownProduct(err):
		return errResp(http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		return errResp(http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return errResp(http.StatusGatewayTimeout, err.Error())
	default:
		return errResp(http.StatusInternalServerError, err.Error())
	}
}

func okResp(payload interface{}) (events.LambdaFunctionURLResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return errResp(http.StatusInternalServerError, "failed to encode response")
	}
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(body)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
