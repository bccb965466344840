// Package groutine starts named goroutines. The name is attached as a pprof
// label and carried in the context, so scan workers are identifiable in
// profiles and goroutine dumps.
package groutine

import (
	"context"
	"runtime/pprof"
)

type ctxKey struct{}

// LabelKey is the pprof label holding the goroutine name.
const LabelKey = "goroutine_name"

// Go runs fn in a new goroutine named name. A nil parent means context.Background().
//
//	groutine.Go(ctx, "scan-stop-watcher", func(ctx context.Context) {
//	    <-ctx.Done()
//	    adapter.StopScan()
//	})
func Go(parent context.Context, name string, fn func(ctx context.Context)) {
	if parent == nil {
		parent = context.Background()
	}
	go pprof.Do(parent, pprof.Labels(LabelKey, name), func(ctx context.Context) {
		fn(context.WithValue(ctx, ctxKey{}, name))
	})
}

// Name returns the name given to Go, or "" outside a named goroutine.
func Name(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	name, _ := ctx.Value(ctxKey{}).(string)
	return name
}
