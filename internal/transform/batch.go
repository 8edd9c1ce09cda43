package transform

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Circles builds one circle per center, at most WithWorkers at a time. The
// result is in the order of centers. The first failure cancels the
// remaining work and is returned with the offending index.
func (t *Transformer) Circles(ctx context.Context, centers []orb.Point, radius float64, opts ...CircleOption) ([]*geojson.Feature, error) {
	c := newCircleConfig(opts)
	out := make([]*geojson.Feature, len(centers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	for i, center := range centers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := t.circle(center, radius, c)
			if err != nil {
				return errors.Wrapf(err, "center %d", i)
			}
			out[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.log.Debug("circles built", zap.Int("count", len(out)), zap.Int("workers", t.workers))
	return out, nil
}

// Circles uses the default Transformer.
func Circles(ctx context.Context, centers []orb.Point, radius float64, opts ...CircleOption) ([]*geojson.Feature, error) {
	return std.Circles(ctx, centers, radius, opts...)
}
