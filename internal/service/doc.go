// Package service implements the application's use cases on top of the
// store interfaces: profile management, influencer publishing, meal CRUD,
// and the follow/favorite relationship toggles. Authorization (ownership
// and influencer-only checks) happens here; identity comes from the auth
// subpackage via the API layer.
package service
