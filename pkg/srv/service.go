package srv

import (
	"context"

	"github.com/sandevgo/causette/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices starts every service in its own goroutine. When a service's
// Start returns, stop is called: the chat surfaces return when the user quits.
func StartServices(ctx context.Context, stop context.CancelFunc, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			defer stop()
			if err := service.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Msgf("%T stopped with error", service)
			}
		}(service)
	}
}

// ShutdownServices waits for ctx and shuts services down in reverse order.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	shutdownCtx := context.WithoutCancel(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(shutdownCtx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
