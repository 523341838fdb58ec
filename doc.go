// Package uuid4 generates and validates random (version 4) RFC 4122
// identifiers.
//
// The two core operations are plain functions that are safe for concurrent
// use and never block:
//
//	id := uuid4.Generate()      // "1b4e28ba-2fa1-4d2e-883f-0016d3cca427"
//	ok := uuid4.IsValid(id)     // true
//
// Host applications that want configuration, counters, tracing or request
// tagging embed the Service façade instead:
//
//	cfg, _ := uuid4.LoadConfig(ctx, "file:///etc/app/uuid4.yaml")
//	srv, _ := uuid4.NewFromConfig(cfg)
//	ids, _ := srv.GenerateBatch(ctx, 10)
//	http.Handle("/", srv.Middleware()(handler))
//
// Only the canonical lowercase rendering is accepted by the validators;
// uppercase input is rejected rather than normalised, matching what the
// generator emits.
package uuid4
