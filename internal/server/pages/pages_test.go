package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/leapstack-labs/devreg/pkg/instrument"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Summary(registry.Landing(), 3).Render(context.Background(), &b))

	out := b.String()
	assert.True(t, strings.HasPrefix(out, `<div id="registry-summary" data-version="3">`), out)
	assert.Contains(t, out, `<li data-group="tech-letter">tech-letter <span>6</span></li>`)
}

func TestCatalogs(t *testing.T) {
	reg, err := registry.New(
		[]*registry.Catalog{
			registry.NewCatalog("stat-card", "Stats <grid>",
				registry.Entry{ID: "stat-card-0", Name: "Users"},
				registry.Entry{ID: "stat-card-1"},
			),
		},
		[]registry.Entry{{ID: "hero-title", Name: "Hero", Description: `Main "headline"`}},
	)
	require.NoError(t, err)

	t.Run("rows carry instrumentation", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, Catalogs(instrument.New(reg)).Render(context.Background(), &b))

		out := b.String()
		assert.Contains(t, out, `<section data-group="stat-card"><h2>stat-card</h2><p>Stats &lt;grid&gt;</p>`)
		assert.Contains(t, out, `<tr data-dev-id="stat-card-0" data-dev-name="Users"><td>0</td><td><code>stat-card-0</code></td><td>Users</td></tr>`)
		assert.Contains(t, out, `<tr data-dev-id="stat-card-1"><td>1</td>`)
		assert.Contains(t, out, `<tr data-dev-id="hero-title" data-dev-name="Hero" data-dev-description="Main &#34;headline&#34;">`)
	})

	t.Run("context without registry renders nothing", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, Catalogs(instrument.Disabled()).Render(context.Background(), &b))
		assert.Empty(t, b.String())
	})
}

func TestInspector(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Inspector("Registry <Inspector>", registry.Landing(), 1).Render(context.Background(), &b))

	out := b.String()
	for _, want := range []string{
		"<!doctype html>",
		"<title>Registry &lt;Inspector&gt; - devreg</title>",
		`<link rel="stylesheet" href="/static/inspector.css">`,
		`data-init="@get('/updates')"`,
		`<div id="registry-summary" data-version="1">`,
		`<section data-group="feature-card">`,
		`<section data-group=""><h2>Elements</h2>`,
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, len(registry.Landing().Groups())+1, strings.Count(out, "<section "))
}
