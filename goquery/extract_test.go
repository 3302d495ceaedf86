package goquery_test

import (
	"testing"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
	"github.com/pswitchy/CDP-Support-Chatbot/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewExtractor()

	t.Run("prefers main over everything else", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<main><p>Main content</p></main>
			<article><p>Article content</p></article>
		</body></html>`

		text, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Main content", text)
	})

	t.Run("prefers article over class-based containers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="content"><p>Div content</p></div>
			<article><p>Article content</p></article>
		</body></html>`

		text, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Article content", text)
	})

	t.Run("walks the selector priority list", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="docs-content"><p>Docs content</p></div>
			<div id="content"><p>ID content</p></div>
		</body></html>`

		text, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "ID content", text)
	})

	t.Run("skips an empty element for the next in priority", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<main></main>
			<article><p>Article text</p></article>
		</body></html>`

		text, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Article text", text)
	})

	t.Run("skips empty containers down to the body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<main></main>
			<div class="content">   </div>
			<p>Body text</p>
		</body></html>`

		text, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Body text", text)
	})

	t.Run("falls back to the body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Plain body text</p></body></html>`

		text, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Plain body text", text)
	})

	t.Run("joins blocks with newlines and drops blanks", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<h1>  Setting up sources  </h1>
			<p>Step one.</p>
			<p>   </p>
			<p>Step two.</p>
		</main></body></html>`

		text, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Setting up sources\nStep one.\nStep two.", text)
	})

	t.Run("skips script and style text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<script>var tracking = true;</script>
			<style>.hidden { display: none; }</style>
			<p>Visible documentation</p>
		</main></body></html>`

		text, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Visible documentation", text)
	})

	t.Run("reports pages without content", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.Extract(`<html><body><main></main></body></html>`)
		require.Error(t, err)
		assert.Equal(t, cdpagent.ENOCONTENT, cdpagent.ErrorCode(err))
		assert.Equal(t, "No content found on the page", cdpagent.ErrorMessage(err))
	})

	t.Run("uses only the first matching element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<article><p>First article</p></article>
			<article><p>Second article</p></article>
		</body></html>`

		text, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "First article", text)
	})
}
