package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

// migration is one numbered schema step. down is empty when the step has no
// rollback script.
type migration struct {
	name string
	up   string
	down string
}

// loadMigrations pairs NNN_name.up.sql with NNN_name.down.sql in dir, sorted
// by name. The 000_* scripts are bulk helpers and not steps.
func loadMigrations(dir string) ([]migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	byName := map[string]*migration{}
	for _, e := range entries {
		fn := e.Name()
		if e.IsDir() || strings.HasPrefix(fn, "000_") {
			continue
		}
		var name string
		var isUp bool
		switch {
		case strings.HasSuffix(fn, upSuffix):
			name, isUp = strings.TrimSuffix(fn, upSuffix), true
		case strings.HasSuffix(fn, downSuffix):
			name = strings.TrimSuffix(fn, downSuffix)
		default:
			continue
		}
		m, ok := byName[name]
		if !ok {
			m = &migration{name: name}
			byName[name] = m
		}
		if isUp {
			m.up = filepath.Join(dir, fn)
		} else {
			m.down = filepath.Join(dir, fn)
		}
	}

	out := make([]migration, 0, len(byName))
	for _, m := range byName {
		if m.up == "" {
			return nil, fmt.Errorf("migration %s has a down script but no up script", m.name)
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

// pending returns the migrations not yet applied, in apply order.
func pending(all []migration, applied map[string]bool) []migration {
	var out []migration
	for _, m := range all {
		if !applied[m.name] {
			out = append(out, m)
		}
	}
	return out
}

// rollbackPlan returns up to steps applied migrations, newest first. Every
// one of them must have a down script.
func rollbackPlan(all []migration, applied map[string]bool, steps int) ([]migration, error) {
	if steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1, got %d", steps)
	}
	var out []migration
	for i := len(all) - 1; i >= 0 && len(out) < steps; i-- {
		m := all[i]
		if !applied[m.name] {
			continue
		}
		if m.down == "" {
			return nil, fmt.Errorf("migration %s has no %s script", m.name, downSuffix)
		}
		out = append(out, m)
	}
	return out, nil
}
