//go:build ignore

package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Regenerates gen/ent from the schemas in db/ent/schema.
// Run from the repository root: go run db/ent/generate.go
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/aferraro/badge-scanner/gen/ent",
			Schema:  "github.com/aferraro/badge-scanner/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
