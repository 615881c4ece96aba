package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	EmbedService struct{ Resolve, Types string }
	NewsService  struct{ List, Count, ByID, Categories, PublishScheduled string }
}{
	EmbedService: struct{ Resolve, Types string }{
		Resolve: "resolve",
		Types:   "types",
	},
	NewsService: struct{ List, Count, ByID, Categories, PublishScheduled string }{
		List:             "list",
		Count:            "count",
		ByID:             "byid",
		Categories:       "categories",
		PublishScheduled: "publishscheduled",
	},
}

func (EmbedService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"Resolve": {
				Description: `Resolve returns the embed node for a pasted URL with its preview.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "url",
						Description: `pasted URL`,
						Type:        smd.String,
					},
				},
				Returns: smd.JSONSchema{
					Description: `embed node`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					422: "unsupported url",
					500: "internal server error",
				},
			},
			"Types": {
				Description: `Types lists the supported node types in resolve order.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `node types`,
					Type:        smd.Array,
				},
			},
		},
	}
}

// Invoke dispatches a JSON-RPC call to the service method.
func (s EmbedService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.EmbedService.Resolve:
		var args = struct {
			URL string `json:"url"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"url"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Resolve(args.URL))

	case RPC.EmbedService.Types:
		resp.Set(s.Types())

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

func (NewsService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves news with optional filtering by categoryId, with pagination. Returns NewsSummary (without content).`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "filter",
						Description: `news filter`,
						Type:        smd.Object,
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of news summaries`,
					Type:        smd.Array,
				},
				Errors: map[int]string{
					400: "invalid pagination",
					500: "internal server error",
				},
			},
			"Count": {
				Description: `Count returns the count of published news matching the optional categoryId filter.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "categoryId",
						Optional:    true,
						Description: `optional category filter`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `count of news items`,
					Type:        smd.Integer,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single news with its document and rendered HTML.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "id",
						Description: `news numeric ID`,
						Type:        smd.Integer,
					},
					{
						Name:        "includeDrafts",
						Optional:    true,
						Description: `return drafts and scheduled news too`,
						Type:        smd.Boolean,
					},
				},
				Returns: smd.JSONSchema{
					Description: `news with full content`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "news not found",
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories retrieves all categories ordered by orderNumber.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Type:        smd.Array,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"PublishScheduled": {
				Description: `PublishScheduled publishes every draft whose scheduledAt has passed.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `count and titles of the published news`,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke dispatches a JSON-RPC call to the service method.
func (s NewsService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.NewsService.List:
		var args = struct {
			Filter NewsFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Filter))

	case RPC.NewsService.Count:
		var args = struct {
			CategoryID *int `json:"categoryId"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"categoryId"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Count(ctx, args.CategoryID))

	case RPC.NewsService.ByID:
		var args = struct {
			ID            int  `json:"id"`
			IncludeDrafts bool `json:"includeDrafts"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id", "includeDrafts"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.ID, args.IncludeDrafts))

	case RPC.NewsService.Categories:
		resp.Set(s.Categories(ctx))

	case RPC.NewsService.PublishScheduled:
		resp.Set(s.PublishScheduled(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
