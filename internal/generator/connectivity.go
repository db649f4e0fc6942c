package generator

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"estudaia/internal/domain"
	"estudaia/internal/port"
)

// CheckConnectivity tests each provider key concurrently. Results are keyed by
// the provider name as given.
func (d *Dispatcher) CheckConnectivity(ctx context.Context, keys map[string]string) map[string]domain.ConnectivityResult {
	results := make(map[string]domain.ConnectivityResult, len(keys))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for name, key := range keys {
		name, key := name, key
		g.Go(func() error {
			res := d.checkOne(gctx, name, key)
			mu.Lock()
			results[name] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (d *Dispatcher) checkOne(ctx context.Context, rawName, key string) domain.ConnectivityResult {
	name, ok := domain.ParseProviderName(rawName)
	if !ok || name == domain.ProviderDemo {
		return domain.ConnectivityResult{Message: "invalid provider"}
	}
	if strings.TrimSpace(key) == "" {
		return domain.ConnectivityResult{Message: "API key not provided"}
	}

	pc := d.providerConfig(name)
	gen, err := d.registry.Build(d.settings(name, key, pc.DefaultModel, pc.BaseURL))
	if err != nil {
		return domain.ConnectivityResult{Message: err.Error()}
	}
	checker, ok := gen.(port.ConnectivityChecker)
	if !ok {
		return domain.ConnectivityResult{Message: "connectivity check not supported"}
	}

	res := checker.Check(ctx)
	d.log.Debug("provider connectivity checked",
		zap.String("provider", string(name)),
		zap.Bool("ok", res.OK),
		zap.Int("status", res.Status),
	)
	return res
}
