// Package users implements the resolvers for directory queries.
package users

import (
	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/model"
)

// Directory is the session state the resolvers read from
type Directory interface {
	Query(query string) (directory.SearchResult, error)
	Ready() bool
	Total() int
	Locale() string
}

func search(dir Directory, query string) (directory.SearchResult, error) {
	if !dir.Ready() {
		return directory.SearchResult{}, directory.ErrNotLoaded
	}
	return dir.Query(query)
}

// ResolveUsers returns the records matching query in directory order
func ResolveUsers(dir Directory, query string) ([]model.UserRecord, error) {
	result, err := search(dir, query)
	if err != nil {
		return nil, err
	}
	return result.Users, nil
}

// ResolveStatistics returns the statistics of the records matching query
func ResolveStatistics(dir Directory, query string) (map[string]interface{}, error) {
	result, err := search(dir, query)
	if err != nil {
		return nil, err
	}
	return statisticsMap(result), nil
}

// ResolveSearch returns the records and statistics for query in one call
func ResolveSearch(dir Directory, query string) (map[string]interface{}, error) {
	result, err := search(dir, query)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"query":      result.Query,
		"count":      len(result.Users),
		"users":      result.Users,
		"statistics": statisticsMap(result),
	}, nil
}

// ResolveDirectoryInfo reports the directory size and readiness
func ResolveDirectoryInfo(dir Directory) map[string]interface{} {
	return map[string]interface{}{
		"total":  dir.Total(),
		"ready":  dir.Ready(),
		"locale": dir.Locale(),
	}
}

func statisticsMap(result directory.SearchResult) map[string]interface{} {
	return map[string]interface{}{
		"male_count":   result.Stats.MaleCount,
		"female_count": result.Stats.FemaleCount,
		"age_sum":      result.Stats.AgeSum,
		"age_average":  result.Stats.AgeAverage,
		"formatted":    result.Formatted,
	}
}
