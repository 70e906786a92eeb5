package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMigrations(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("SELECT 1;"), 0o600))
	}
	return dir
}

func names(ms []migration) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.name)
	}
	return out
}

func TestLoadMigrations_PairsUpAndDown(t *testing.T) {
	dir := writeMigrations(t,
		"000_drop_all.sql", "000_consolidated.sql",
		"002_add_index.up.sql",
		"001_create_contacts.up.sql", "001_create_contacts.down.sql",
		"README.md",
	)

	all, err := loadMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_contacts", "002_add_index"}, names(all))
	assert.Equal(t, filepath.Join(dir, "001_create_contacts.down.sql"), all[0].down)
	assert.Empty(t, all[1].down)
}

func TestLoadMigrations_DownWithoutUp(t *testing.T) {
	dir := writeMigrations(t, "001_orphan.down.sql")
	_, err := loadMigrations(dir)
	assert.Error(t, err)
}

func TestLoadMigrations_RepoSet(t *testing.T) {
	all, err := loadMigrations(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.NotEmpty(t, all)
	for _, m := range all {
		assert.NotEmpty(t, m.down, "%s needs a rollback script", m.name)
	}
}

func TestPending(t *testing.T) {
	all := []migration{{name: "001"}, {name: "002"}, {name: "003"}}
	assert.Equal(t, []string{"002", "003"}, names(pending(all, map[string]bool{"001": true})))
	assert.Empty(t, pending(all, map[string]bool{"001": true, "002": true, "003": true}))
}

func TestRollbackPlan(t *testing.T) {
	all := []migration{
		{name: "001", down: "001.down.sql"},
		{name: "002", down: "002.down.sql"},
		{name: "003", down: "003.down.sql"},
	}
	applied := map[string]bool{"001": true, "002": true}

	plan, err := rollbackPlan(all, applied, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"002"}, names(plan))

	plan, err = rollbackPlan(all, applied, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"002", "001"}, names(plan))

	plan, err = rollbackPlan(all, map[string]bool{}, 1)
	require.NoError(t, err)
	assert.Empty(t, plan)

	_, err = rollbackPlan(all, applied, 0)
	assert.Error(t, err)
}

func TestRollbackPlan_MissingDownScript(t *testing.T) {
	all := []migration{{name: "001", down: "001.down.sql"}, {name: "002"}}
	_, err := rollbackPlan(all, map[string]bool{"001": true, "002": true}, 1)
	assert.ErrorContains(t, err, "002")
}
