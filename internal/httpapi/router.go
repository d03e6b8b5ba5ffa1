package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"orderbridge/internal/api"
	"orderbridge/internal/transform"
	"orderbridge/internal/webhook"
	"orderbridge/pkg/config"
	"orderbridge/pkg/woocommerce"
)

type Dependencies struct {
	Cfg config.Config
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	wooClient := woocommerce.Client{
		BaseURL:        deps.Cfg.Woo.BaseURL,
		ConsumerKey:    deps.Cfg.Woo.ConsumerKey,
		ConsumerSecret: deps.Cfg.Woo.ConsumerSecret,
	}
	webhookHandler := webhook.Handler{
		Cfg: deps.Cfg,
		Transformer: transform.Transformer{
			Resolver: transform.Resolver{Catalog: wooClient},
		},
		Orders: wooClient,
	}

	r.Post("/webhook/shopify/order-create", webhookHandler.ServeHTTP)

	return r
}
