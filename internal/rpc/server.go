package rpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/vmkteam/zenrpc/v2"
)

const (
	NamespaceNews  = "news"
	NamespaceEmbed = "embed"
)

func New(logger *slog.Logger, manager Manager) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(NamespaceNews, NewNewsService(manager))
	rpcServer.Register(NamespaceEmbed, NewEmbedService(manager))
	rpcServer.Use(withSLog(logger))

	return rpcServer
}

func withSLog(logger *slog.Logger) zenrpc.MiddlewareFunc {
	return func(h zenrpc.InvokeFunc) zenrpc.InvokeFunc {
		return func(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
			start := time.Now()
			r := h(ctx, method, params)

			attrs := []any{
				"namespace", zenrpc.NamespaceFromContext(ctx),
				"method", method,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if r.Error != nil {
				attrs = append(attrs, "code", r.Error.Code, "error", r.Error.Message)
			}
			logger.InfoContext(ctx, "rpc call", attrs...)

			return r
		}
	}
}
