// Package engine orchestrates the format pipeline.
//
// # Overview
//
// The engine ties the pipeline stages together for one file:
//
//	tokenize -> route -> search -> render
//
// A registered language frontend produces the token stream, the router
// enumerates layout candidates per boundary, the optimizer searches for the
// cheapest consistent layout, and the renderer emits the formatted text.
//
// The engine also owns the cross-cutting concerns around a run: the result
// cache, metrics recording and run-scoped logging.
//
// # Usage
//
//	registry := lang.NewRegistry()
//	treesitter.RegisterAll(registry)
//
//	eng := engine.New(engine.DefaultConfig(), registry, logger)
//	eng.SetCache(store)
//
//	res, err := eng.Format(ctx, "main.go", src)
//	if err != nil { ... }
//	fmt.Print(res.Output)
package engine
