// Package api implements the HTTP layer of the FitFoodie API: request
// and response models, handlers for the auth, user, influencer, and meal
// route groups, and the single mapping from internal errors to HTTP
// status codes and JSON error envelopes.
package api
