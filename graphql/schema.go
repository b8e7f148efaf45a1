// Package graphql assembles the GraphQL schema of the directory API.
package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/userdir-backend/graphql/modules/users"
)

// CreateSchema builds the root schema over dir
func CreateSchema(dir users.Directory) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: users.GetQueryFields(dir),
		}),
	})
}
