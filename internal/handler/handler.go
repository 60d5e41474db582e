package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"registration-engine/internal/model"
	"registration-engine/internal/pricing"
)

// NewQuoteHandler returns the POST /quote handler bound to one event
// definition. The config is captured here and passed into every
// computation; the handler itself holds no mutable state.
func NewQuoteHandler(cfg *model.EventConfig) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
			return
		}

		var req model.QuoteRequest
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}

		if len(req.Participants) == 0 {
			writeError(ctx, fasthttp.StatusBadRequest, "At least one participant is required")
			return
		}

		resp := pricing.Quote(cfg, &req)

		ctx.SetContentType("application/json")
		json.NewEncoder(ctx).Encode(resp)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	json.NewEncoder(ctx).Encode(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
