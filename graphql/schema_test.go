package graphql_test

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/ortelius/userdir-backend/directory"
	gqlschema "github.com/ortelius/userdir-backend/graphql"
	"github.com/ortelius/userdir-backend/model"
	"github.com/ortelius/userdir-backend/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func profile(uuid, first, last, gender string, age int) model.RawProfile {
	return model.RawProfile{
		Login:  model.ProfileLogin{UUID: uuid},
		Name:   model.ProfileName{First: first, Last: last},
		Gender: gender,
		Dob:    model.ProfileDob{Age: age},
	}
}

func newController(t *testing.T, start bool) *directory.Controller {
	t.Helper()
	ctrl := directory.NewController(directory.NewStore(), directory.NopView{}, directory.Options{
		MinQueryLength: 1,
		Formatter:      util.NewNumberFormatter(language.BrazilianPortuguese),
	}, nil)
	if !start {
		return ctrl
	}

	source := directory.ProfileSourceFunc(func(context.Context) ([]model.RawProfile, error) {
		return []model.RawProfile{
			profile("3", "Juliana", "Costa", "female", 30),
			profile("1", "Ana", "Silva", "female", 20),
			profile("2", "Bruno", "Alves", "male", 40),
		}, nil
	})
	loader := directory.NewLoader(source, directory.LoaderConfig{Locale: language.BrazilianPortuguese}, nil)
	_, err := ctrl.Start(context.Background(), loader)
	require.NoError(t, err)
	return ctrl
}

func run(t *testing.T, ctrl *directory.Controller, query string) *graphql.Result {
	t.Helper()
	schema, err := gqlschema.CreateSchema(ctrl)
	require.NoError(t, err)
	return graphql.Do(graphql.Params{Schema: schema, RequestString: query, Context: context.Background()})
}

func TestSchema_Users(t *testing.T) {
	result := run(t, newController(t, true), `{ users(query: "ana") { id name age } }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	users := data["users"].([]interface{})
	require.Len(t, users, 2)
	assert.Equal(t, "Ana Silva", users[0].(map[string]interface{})["name"])
	assert.Equal(t, "Juliana Costa", users[1].(map[string]interface{})["name"])
}

func TestSchema_Statistics(t *testing.T) {
	result := run(t, newController(t, true), `{
		statistics(query: "a") {
			male_count female_count age_sum age_average
			formatted { age_sum age_average }
		}
	}`)
	require.Empty(t, result.Errors)

	stats := result.Data.(map[string]interface{})["statistics"].(map[string]interface{})
	assert.Equal(t, 1, stats["male_count"])
	assert.Equal(t, 2, stats["female_count"])
	assert.Equal(t, 90, stats["age_sum"])
	assert.Equal(t, 30.0, stats["age_average"])

	formatted := stats["formatted"].(map[string]interface{})
	assert.Equal(t, "90", formatted["age_sum"])
	assert.Equal(t, "30,00", formatted["age_average"])
}

func TestSchema_SearchAndDirectory(t *testing.T) {
	result := run(t, newController(t, true), `{
		search(query: " BRUNO ") { query count users { name } }
		directory { total ready locale }
	}`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	search := data["search"].(map[string]interface{})
	assert.Equal(t, "bruno", search["query"])
	assert.Equal(t, 1, search["count"])

	info := data["directory"].(map[string]interface{})
	assert.Equal(t, 3, info["total"])
	assert.Equal(t, true, info["ready"])
	assert.Equal(t, "pt-BR", info["locale"])
}

func TestSchema_NotReady(t *testing.T) {
	result := run(t, newController(t, false), `{ users { id } }`)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, directory.ErrNotLoaded.Error())
}
