// Package ent holds the generated Ent client. Run `go generate ./ent` after
// editing the schemas under ent/schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
