package headless

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/stretchr/testify/require"
)

func TestNewRendererValidation(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(Config{MaxParallel: -1})
	require.Error(t, err)

	r, err := NewRenderer(Config{MaxParallel: 2})
	require.NoError(t, err)
	t.Cleanup(r.Close)
	require.Equal(t, 2, cap(r.slots))
	require.Equal(t, DefaultNavigationTimeout, r.cfg.NavigationTimeout)
}

func TestAcquireSlotHonoursContext(t *testing.T) {
	t.Parallel()

	r := &Renderer{slots: make(chan struct{}, 1)}
	require.NoError(t, r.acquireSlot(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, r.acquireSlot(ctx), context.DeadlineExceeded)

	r.releaseSlot()
	require.NoError(t, r.acquireSlot(context.Background()))
}

func TestNetworkHeaders(t *testing.T) {
	t.Parallel()

	got := networkHeaders(http.Header{
		"X-Multi":  {"a", "b"},
		"X-Single": {"c"},
		"X-Empty":  {},
	})
	require.Equal(t, []string{"a", "b"}, got["X-Multi"])
	require.Equal(t, "c", got["X-Single"])
	require.NotContains(t, got, "X-Empty")
}

func TestDocumentResponse(t *testing.T) {
	t.Parallel()

	doc := &documentResponse{}
	doc.observe(&network.EventResponseReceived{
		Type:     network.ResourceTypeScript,
		Response: &network.Response{Status: 500, URL: "https://cdn.example.com/app.js"},
	})
	doc.observe(&network.EventResponseReceived{
		Type: network.ResourceTypeDocument,
		Response: &network.Response{
			Status:  203,
			URL:     "https://hackmit.org/",
			Headers: network.Headers{"X-Request-ID": "abc"},
		},
	})
	status, headers, finalURL := doc.result("https://hackmit.org", "")
	require.Equal(t, 203, status)
	require.Equal(t, "abc", headers.Get("X-Request-ID"))
	require.Equal(t, "https://hackmit.org/", finalURL)

	empty := &documentResponse{}
	status, headers, finalURL = empty.result("https://req", "https://final")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, headers)
	require.Equal(t, "https://final", finalURL)

	_, _, finalURL = empty.result("https://req", "")
	require.Equal(t, "https://req", finalURL)
}

func TestDocumentResponseIgnoresSubframes(t *testing.T) {
	t.Parallel()

	doc := &documentResponse{}
	doc.observe(&network.EventResponseReceived{
		FrameID:  cdp.FrameID("main"),
		Type:     network.ResourceTypeDocument,
		Response: &network.Response{Status: 200, URL: "https://hackmit.org/"},
	})
	doc.observe(&network.EventResponseReceived{
		FrameID:  cdp.FrameID("ad-frame"),
		Type:     network.ResourceTypeDocument,
		Response: &network.Response{Status: 404, URL: "https://ads.example/frame.html"},
	})

	status, _, finalURL := doc.result("https://hackmit.org", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "https://hackmit.org/", finalURL)
}
