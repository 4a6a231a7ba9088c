// Package middleware provides HTTP middleware for the Fernweh API.
//
// The middleware package contains reusable middleware components for request
// processing. The API is unauthenticated, so the chain is purely about
// observability and request hygiene.
//
// # Available Middleware
//
// Core middleware components:
//
//   - RequestID: Unique request identifier generation and propagation
//   - Logger: Structured request logging via slog
//   - Recovery: Panic recovery with a Problem Details 500 response
//   - CORS: Cross-origin request handling
//   - Idempotency: Replay cache for Idempotency-Key requests
//   - Compress: gzip response compression
//
// # Chaining
//
// Middleware composes with Chain, outermost first:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS([]string{"*"}),
//	    middleware.Idempotency(store),
//	    middleware.Compress,
//	)
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
