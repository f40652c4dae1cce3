package shader

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CompileAll compiles a batch of sources concurrently. Compilation is pure
// per source, so independent sources parallelize cleanly; each Source is
// touched by exactly one goroutine.
//
// The first compilation error cancels the remaining work and is returned.
// Sources that were already compiled are skipped.
func CompileAll(ctx context.Context, sources []*Source) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		if src == nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return src.Compile()
		})
	}
	return g.Wait()
}

// CompileAll compiles a batch of sources concurrently through the cache,
// with the same cancellation semantics as the package-level CompileAll.
func (c *ModuleCache) CompileAll(ctx context.Context, sources []*Source) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		if src == nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.Compile(src)
		})
	}
	return g.Wait()
}
