package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

const samplePage = `<html>
<head><title>HackMIT 2025</title><style>body { color: red; }</style></head>
<body>
  <nav><a href="/">Home</a><a href="/faq">FAQ</a></nav>
  <script>window.__STATE__ = {"ai": true};</script>
  <main>
    <h1>HackMIT</h1>
    <p>Build   with
       <b>TensorFlow</b> and Docker.</p>
  </main>
  <footer>Copyright MIT</footer>
</body>
</html>`

func TestStripTextRemovesNoise(t *testing.T) {
	t.Parallel()

	text, err := StripText(strings.NewReader(samplePage))
	require.NoError(t, err)
	require.Equal(t, "HackMIT 2025 HackMIT Build with TensorFlow and Docker.", text)
	require.NotContains(t, text, "FAQ")
	require.NotContains(t, text, "Copyright")
	require.NotContains(t, text, "__STATE__")
}

func TestStripTextNoscript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "tag manager iframe",
			body: `<html><head><title>Spring Week</title></head><body>` +
				`<noscript><iframe src="https://www.googletagmanager.com/ns.html?id=GTM-X" height="0" width="0"></iframe></noscript>` +
				`<p>Welcome hackers</p></body></html>`,
			want: "Spring Week Welcome hackers",
		},
		{
			name: "noscript text kept",
			body: `<html><body><p>Schedule</p><noscript><p>Enable JavaScript</p></noscript></body></html>`,
			want: "Schedule Enable JavaScript",
		},
		{
			name: "noscript in head",
			body: `<html><head><noscript><link rel="stylesheet" href="/ns.css"></noscript></head><body><p>Rules</p></body></html>`,
			want: "Rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, err := StripText(strings.NewReader(tt.body))
			require.NoError(t, err)
			require.Equal(t, tt.want, text)
			require.NotContains(t, text, "<")
		})
	}
}

func TestExtractTruncates(t *testing.T) {
	t.Parallel()

	body := "<html><body><p>" + strings.Repeat("a", 6000) + "</p></body></html>"
	text, err := New(ModeStrip, 5000).Extract([]byte(body), "https://example.com")
	require.NoError(t, err)
	require.Equal(t, 5000+len(TruncationMarker), len(text))
	require.True(t, strings.HasSuffix(text, TruncationMarker))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", Truncate("short", 10))
	require.Equal(t, "exact", Truncate("exact", 5))
	require.Equal(t, "ab...", Truncate("abcdef", 2))
	require.Equal(t, "unbounded", Truncate("unbounded", 0))

	multi := Truncate(strings.Repeat("é", 10), 4)
	require.Equal(t, "éééé...", multi)
	require.True(t, utf8.ValidString(multi))
}

func TestExtractEmptyBody(t *testing.T) {
	t.Parallel()

	text, err := New("", 0).Extract(nil, "")
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestReadabilityModeHandlesSparsePages(t *testing.T) {
	t.Parallel()

	body := []byte("<html><body><p>tiny</p></body></html>")
	text, err := New(ModeReadability, 100).Extract(body, "https://example.com")
	require.NoError(t, err)
	require.Contains(t, text, "tiny")
}

func TestReadabilityModeBadURLFallsBackToStrip(t *testing.T) {
	t.Parallel()

	body := []byte("<html><body><nav>menu</nav><p>tiny</p></body></html>")
	text, err := New(ModeReadability, 100).Extract(body, "://bad")
	require.NoError(t, err)
	require.Equal(t, "tiny", text)
}

func TestReadabilityModeKeepsArticle(t *testing.T) {
	t.Parallel()

	paragraph := "<p>" + strings.Repeat("Participants build machine learning projects over a weekend. ", 12) + "</p>"
	body := []byte("<html><head><title>Hack</title></head><body>" +
		"<div class=\"sidebar\"><a href=\"/a\">Sponsors</a></div>" +
		"<article><h1>About the hackathon</h1>" + paragraph + paragraph + paragraph + "</article>" +
		"<footer>Legal</footer></body></html>")

	text, err := New(ModeReadability, DefaultMaxChars).Extract(body, "https://example.com/about")
	require.NoError(t, err)
	require.Contains(t, text, "Participants build machine learning projects")
	require.NotContains(t, text, "Legal")
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModeStrip, mode)

	mode, err = ParseMode(" Readability ")
	require.NoError(t, err)
	require.Equal(t, ModeReadability, mode)

	_, err = ParseMode("llm")
	require.Error(t, err)
}
