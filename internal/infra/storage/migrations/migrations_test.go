package migrations

import (
	"io/fs"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/tariffcodec"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, dir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.True(t, sort.StringsAreSorted(files))

	for _, name := range files {
		body, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestTariffSeedCoversDefaultCombinations(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, dir+"/00002_create_tariffs.sql")
	require.NoError(t, err)

	codes := []string{domain.OneTimeCode}
	for _, c := range tariffcodec.DefaultCombinations() {
		codes = append(codes, c.String())
	}

	for _, code := range codes {
		assert.True(t, strings.Contains(string(body), "'"+code+"'"), code)
	}
}
