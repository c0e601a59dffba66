package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://wellnesstal.de"

func normalizeDoc(t *testing.T, doc string) (string, *Stats) {
	t.Helper()
	out, stats, err := New(base).Document(json.RawMessage(doc))
	require.NoError(t, err)
	return string(out), stats
}

func TestRewriteStorageProviderURL(t *testing.T) {
	out, stats := normalizeDoc(t,
		`{"image":{"url":"https://proj.supabase.co/storage/v1/object/public/bucket/uploads/a.jpg"}}`)

	assert.JSONEq(t, `{"image":{"url":"https://wellnesstal.de/api/images/uploads/a.jpg"}}`, out)
	assert.Equal(t, 1, stats.Changed)
	assert.Empty(t, stats.Malformed)
}

func TestRewriteRelativeUploadPath(t *testing.T) {
	out, stats := normalizeDoc(t, `{"images":[{"url":"/uploads/x.png"}]}`)

	assert.JSONEq(t, `{"images":[{"url":"https://wellnesstal.de/api/images/uploads/x.png"}]}`, out)
	assert.Equal(t, 1, stats.Changed)
}

func TestRewriteLocalhostURL(t *testing.T) {
	for _, in := range []string{
		"http://localhost:3000/uploads/spa.webp",
		"http://localhost/uploads/spa.webp",
		"https://127.0.0.1:8080/uploads/spa.webp",
	} {
		out, stats := normalizeDoc(t, `{"heroUrl":"`+in+`"}`)
		assert.JSONEq(t, `{"heroUrl":"https://wellnesstal.de/api/images/uploads/spa.webp"}`, out, in)
		assert.Equal(t, 1, stats.Changed, in)
	}
}

func TestAlreadyCanonicalUnchanged(t *testing.T) {
	doc := `{"images":[{"url":"https://wellnesstal.de/api/images/uploads/x.png"}]}`
	out, stats := normalizeDoc(t, doc)

	assert.JSONEq(t, doc, out)
	assert.Equal(t, 0, stats.Changed)
}

func TestThirdPartyURLUnchanged(t *testing.T) {
	doc := `{"url":"https://www.youtube.com/watch?v=abc","videoUrl":"https://cdn.example.com/a.mp4"}`
	out, stats := normalizeDoc(t, doc)

	assert.JSONEq(t, doc, out)
	assert.Equal(t, 0, stats.Changed)
}

func TestEmptyStringsSkipped(t *testing.T) {
	doc := `{"url":"","imageUrl":"","items":[]}`
	out, stats := normalizeDoc(t, doc)

	assert.JSONEq(t, doc, out)
	assert.Equal(t, 0, stats.Changed)
}

func TestOnlyAssetKeysRewritten(t *testing.T) {
	// "href" and "link" are not asset keys even if they hold upload paths
	doc := `{"href":"/uploads/a.jpg","link":"/uploads/b.jpg","body":"/uploads/c.jpg"}`
	out, stats := normalizeDoc(t, doc)

	assert.JSONEq(t, doc, out)
	assert.Equal(t, 0, stats.Changed)
}

func TestKeySuffixVariants(t *testing.T) {
	out, stats := normalizeDoc(t,
		`{"url":"/uploads/a.jpg","posterUrl":"/uploads/b.jpg","og_url":"/uploads/c.jpg"}`)

	assert.JSONEq(t, `{
		"url":"https://wellnesstal.de/api/images/uploads/a.jpg",
		"posterUrl":"https://wellnesstal.de/api/images/uploads/b.jpg",
		"og_url":"https://wellnesstal.de/api/images/uploads/c.jpg"
	}`, out)
	assert.Equal(t, 3, stats.Changed)
}

func TestDeepNestedTraversal(t *testing.T) {
	out, stats := normalizeDoc(t, `{
		"sections":[
			{"gallery":{"images":[{"url":"/uploads/1.jpg"},{"url":"/uploads/2.jpg"}]}},
			{"hero":{"imageUrl":"https://proj.supabase.co/storage/v1/object/public/media/uploads/3.jpg"}}
		]
	}`)

	assert.Equal(t, 3, stats.Changed)
	assert.Contains(t, out, base+"/api/images/uploads/1.jpg")
	assert.Contains(t, out, base+"/api/images/uploads/2.jpg")
	assert.Contains(t, out, base+"/api/images/uploads/3.jpg")
}

func TestMalformedURLReportedNotFatal(t *testing.T) {
	out, stats := normalizeDoc(t, `{"url":"http://[::bad%/uploads/x.png","imageUrl":"/uploads/y.png"}`)

	// the bad value is reported and left alone, the good one still rewrites
	assert.Len(t, stats.Malformed, 1)
	assert.Equal(t, 1, stats.Changed)
	assert.Contains(t, out, "http://[::bad%")
	assert.Contains(t, out, base+"/api/images/uploads/y.png")
}

func TestIdempotence(t *testing.T) {
	docs := []string{
		`{"image":{"url":"https://proj.supabase.co/storage/v1/object/public/bucket/uploads/a.jpg"}}`,
		`{"images":[{"url":"/uploads/x.png"},{"url":"http://localhost:3000/uploads/y.png"}]}`,
		`{"packages":[{"name":"Day Spa","price":"89","ctaUrl":"/uploads/flyer.pdf"}]}`,
		`{"url":"https://cdn.example.com/keep.jpg","count":3,"nested":{"avatarUrl":""}}`,
	}

	for _, doc := range docs {
		once, stats1, err := New(base).Document(json.RawMessage(doc))
		require.NoError(t, err)

		twice, stats2, err := New(base).Document(once)
		require.NoError(t, err)

		assert.JSONEq(t, string(once), string(twice), doc)
		assert.Equal(t, 0, stats2.Changed, doc)
		_ = stats1
	}
}

func TestInputNotMutated(t *testing.T) {
	doc := map[string]any{
		"image": map[string]any{"url": "/uploads/a.jpg"},
	}

	out, stats := New(base).Value(doc)

	assert.Equal(t, 1, stats.Changed)
	assert.Equal(t, "/uploads/a.jpg", doc["image"].(map[string]any)["url"], "input must stay untouched for dry-run diffs")
	assert.Equal(t, base+"/api/images/uploads/a.jpg", out.(map[string]any)["image"].(map[string]any)["url"])
}

func TestNumbersSurviveRoundTrip(t *testing.T) {
	doc := `{"sitemapPriority":0.8,"count":12345678901234,"url":"/uploads/a.jpg"}`
	out, _ := normalizeDoc(t, doc)

	assert.Contains(t, out, "0.8")
	assert.Contains(t, out, "12345678901234")
}
