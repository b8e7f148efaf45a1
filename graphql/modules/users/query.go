// Package users defines the GraphQL queries for the user directory.
package users

import (
	"github.com/graphql-go/graphql"
)

// GetQueryFields returns the directory queries to be mounted in the root schema.
func GetQueryFields(dir Directory) graphql.Fields {
	queryArg := graphql.FieldConfigArgument{
		"query": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
	}

	return graphql.Fields{
		"users": &graphql.Field{
			Type: graphql.NewList(UserType),
			Args: queryArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveUsers(dir, queryParam(p))
			},
		},
		"statistics": &graphql.Field{
			Type: StatisticsType,
			Args: queryArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveStatistics(dir, queryParam(p))
			},
		},
		"search": &graphql.Field{
			Type: SearchResultType,
			Args: graphql.FieldConfigArgument{
				"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveSearch(dir, queryParam(p))
			},
		},
		"directory": &graphql.Field{
			Type: DirectoryInfoType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveDirectoryInfo(dir), nil
			},
		},
	}
}

func queryParam(p graphql.ResolveParams) string {
	q, _ := p.Args["query"].(string)
	return q
}
