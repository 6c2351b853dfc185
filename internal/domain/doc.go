// Package domain defines the core business entities of the FitFoodie API:
// users, influencer profiles, meals, and the validation rules that apply
// to them. It has no dependencies on storage or transport concerns.
package domain
