// Package middleware provides composable HTTP middleware for handlers
// built on the kit's handler.Context contract: CORS, request IDs,
// structured request logging, and API key enforcement.
//
// Every middleware follows the same pattern: a bare constructor with
// sensible defaults and a WithConfig variant for customization, each
// config carrying an optional Skip predicate:
//
//	wrapped := request.Wrap(h,
//		middleware.RequestID[*request.Context](),
//		middleware.Logging[*request.Context](),
//		middleware.APIKey[*request.Context](store.IsValidKey),
//	)
//
// Middleware is generic over the context type, so custom contexts
// implementing handler.Context work without adaptation.
package middleware
