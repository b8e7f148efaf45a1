// Package users defines the GraphQL types for the user directory.
package users

import (
	"github.com/graphql-go/graphql"
)

// UserType represents one directory entry
var UserType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name":    &graphql.Field{Type: graphql.String},
		"picture": &graphql.Field{Type: graphql.String},
		"gender":  &graphql.Field{Type: graphql.String},
		"age":     &graphql.Field{Type: graphql.Int},
	},
})

// FormattedStatisticsType holds the locale formatted display strings
var FormattedStatisticsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FormattedStatistics",
	Fields: graphql.Fields{
		"male_count":   &graphql.Field{Type: graphql.String},
		"female_count": &graphql.Field{Type: graphql.String},
		"age_sum":      &graphql.Field{Type: graphql.String},
		"age_average":  &graphql.Field{Type: graphql.String},
	},
})

// StatisticsType represents the aggregate numbers of a filtered subset
var StatisticsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Statistics",
	Fields: graphql.Fields{
		"male_count":   &graphql.Field{Type: graphql.Int},
		"female_count": &graphql.Field{Type: graphql.Int},
		"age_sum":      &graphql.Field{Type: graphql.Int},
		"age_average":  &graphql.Field{Type: graphql.Float},
		"formatted":    &graphql.Field{Type: FormattedStatisticsType},
	},
})

// SearchResultType combines the filtered list and its statistics
var SearchResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SearchResult",
	Fields: graphql.Fields{
		"query":      &graphql.Field{Type: graphql.String},
		"count":      &graphql.Field{Type: graphql.Int},
		"users":      &graphql.Field{Type: graphql.NewList(UserType)},
		"statistics": &graphql.Field{Type: StatisticsType},
	},
})

// DirectoryInfoType describes the loaded directory
var DirectoryInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DirectoryInfo",
	Fields: graphql.Fields{
		"total":  &graphql.Field{Type: graphql.Int},
		"ready":  &graphql.Field{Type: graphql.Boolean},
		"locale": &graphql.Field{Type: graphql.String},
	},
})
