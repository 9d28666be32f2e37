package view

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/van-is-code/portfolio/internal/content"
	"github.com/van-is-code/portfolio/internal/prefs"
)

type recordingHost struct {
	mu      sync.Mutex
	renders []string
	opened  []string
	printed []string
}

func (h *recordingHost) Render(markup string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders = append(h.renders, markup)
}

func (h *recordingHost) Open(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.opened = append(h.opened, url)
}

func (h *recordingHost) Print(document string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.printed = append(h.printed, document)
}

func (h *recordingHost) last() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.renders) == 0 {
		return ""
	}
	return h.renders[len(h.renders)-1]
}

func (h *recordingHost) renderCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.renders)
}

// pendingLoad is one Load call held until the test releases it. It ignores
// cancellation, like a fetch that cannot be aborted.
type pendingLoad struct {
	lang    content.Language
	release chan struct{}
}

type gatedLoader struct {
	started chan *pendingLoad
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{started: make(chan *pendingLoad, 8)}
}

func (g *gatedLoader) Load(_ context.Context, lang content.Language) (*content.Portfolio, error) {
	pl := &pendingLoad{lang: lang, release: make(chan struct{})}
	g.started <- pl
	<-pl.release
	return content.NewLoader().Load(context.Background(), lang)
}

type failingLoader struct{}

func (failingLoader) Load(context.Context, content.Language) (*content.Portfolio, error) {
	return nil, errors.New("bundle missing")
}

func mountLoaded(t *testing.T, store prefs.Store) (*App, *recordingHost) {
	t.Helper()
	host := &recordingHost{}
	app := NewApp(host, store, content.NewLoader())
	app.Mount(context.Background())
	app.Wait()
	require.NotNil(t, app.Data())
	return app, host
}

func TestApp_MountShowsLoadingThenEnglish(t *testing.T) {
	host := &recordingHost{}
	loader := newGatedLoader()
	app := NewApp(host, prefs.NewMemory(), loader)

	app.Mount(context.Background())
	pl := <-loader.started
	assert.Equal(t, content.English, pl.lang)
	require.Equal(t, 1, host.renderCount())
	assert.Contains(t, host.last(), "Loading...")
	assert.Nil(t, app.Data())

	close(pl.release)
	app.Wait()

	require.Equal(t, 2, host.renderCount())
	assert.Contains(t, host.last(), "Skills &amp; Technologies")
	assert.Equal(t, content.English, app.State().Language)
	assert.False(t, app.State().CVVisible)
}

func TestApp_StoredVietnameseRendersOnFirstPaint(t *testing.T) {
	store := prefs.NewMemory()
	require.NoError(t, prefs.SetLanguage(store, content.Vietnamese))

	app, host := mountLoaded(t, store)

	require.Equal(t, 2, host.renderCount())
	first := host.renders[0]
	assert.Contains(t, first, "Đang tải...")

	page := host.last()
	assert.Contains(t, page, "Xin chào")
	assert.Contains(t, page, "Kỹ năng &amp; Công nghệ")
	assert.Contains(t, page, "Nguyễn Thanh Vân")
	assert.NotContains(t, page, "Featured Projects")
	assert.Equal(t, content.Vietnamese, app.State().Language)
}

func TestApp_SwitchLanguagePersistsPreference(t *testing.T) {
	store := prefs.NewMemory()
	app, host := mountLoaded(t, store)

	app.ToggleLanguage()
	app.Wait()

	assert.Equal(t, content.Vietnamese, prefs.Language(store))
	assert.Equal(t, content.Vietnamese, app.State().Language)
	assert.Contains(t, host.last(), "Dự án nổi bật")

	app.ToggleLanguage()
	app.Wait()

	assert.Equal(t, content.English, prefs.Language(store))
	assert.Contains(t, host.last(), "Featured Projects")
}

func TestApp_SwitchBackYieldsEqualBundle(t *testing.T) {
	app, _ := mountLoaded(t, prefs.NewMemory())
	before := app.Data()

	app.SetLanguage(content.Vietnamese)
	app.Wait()
	app.SetLanguage(content.English)
	app.Wait()

	after := app.Data()
	assert.NotSame(t, before, after)
	assert.Equal(t, before, after)
}

func TestApp_SetSameLanguageIsNoop(t *testing.T) {
	app, host := mountLoaded(t, prefs.NewMemory())
	n := host.renderCount()

	app.SetLanguage(content.English)
	app.Wait()

	assert.Equal(t, n, host.renderCount())
}

func TestApp_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	store := prefs.NewMemory()
	require.NoError(t, store.Set(prefs.LanguageKey, "fr"))

	app, host := mountLoaded(t, store)

	assert.Equal(t, content.English, app.State().Language)
	assert.Contains(t, host.last(), "Featured Projects")
}

func TestApp_LaterSwitchWins(t *testing.T) {
	host := &recordingHost{}
	loader := newGatedLoader()
	app := NewApp(host, prefs.NewMemory(), loader)

	app.Mount(context.Background())
	first := <-loader.started
	close(first.release)
	app.Wait()

	app.SetLanguage(content.Vietnamese)
	toVI := <-loader.started
	app.SetLanguage(content.English)
	toEN := <-loader.started

	// The later switch resolves first, the superseded one last.
	close(toEN.release)
	close(toVI.release)
	app.Wait()

	assert.Equal(t, content.English, app.State().Language)
	assert.Contains(t, host.last(), "Featured Projects")
	for _, r := range host.renders {
		assert.NotContains(t, r, "Dự án nổi bật")
	}
}

func TestApp_ResultAfterUnmountIsDiscarded(t *testing.T) {
	host := &recordingHost{}
	loader := newGatedLoader()
	app := NewApp(host, prefs.NewMemory(), loader)

	app.Mount(context.Background())
	pl := <-loader.started
	app.Unmount()
	close(pl.release)
	app.Wait()

	assert.Nil(t, app.Data())
	assert.Equal(t, 1, host.renderCount())
}

func TestApp_LoadFailureKeepsLoading(t *testing.T) {
	host := &recordingHost{}
	app := NewApp(host, prefs.NewMemory(), failingLoader{})

	app.Mount(context.Background())
	app.Wait()

	assert.Nil(t, app.Data())
	assert.Equal(t, 1, host.renderCount())
	assert.Contains(t, host.last(), "Loading...")
}

func TestApp_OpenCloseCVRestoresLanding(t *testing.T) {
	app, host := mountLoaded(t, prefs.NewMemory())
	landing := host.last()
	data := app.Data()

	app.OpenCV()
	assert.True(t, app.State().CVVisible)
	assert.Contains(t, host.last(), `id="cv-content"`)

	app.CloseCV()
	assert.False(t, app.State().CVVisible)
	assert.Equal(t, landing, host.last())
	assert.Same(t, data, app.Data())
}

func TestApp_OverlayToggleDoesNotReload(t *testing.T) {
	host := &recordingHost{}
	loader := newGatedLoader()
	app := NewApp(host, prefs.NewMemory(), loader)

	app.Mount(context.Background())
	close((<-loader.started).release)
	app.Wait()

	app.OpenCV()
	app.CloseCV()
	app.Wait()

	assert.Empty(t, loader.started)
}

func TestApp_OpenCVIgnoredWhileLoading(t *testing.T) {
	host := &recordingHost{}
	loader := newGatedLoader()
	app := NewApp(host, prefs.NewMemory(), loader)

	app.Mount(context.Background())
	pl := <-loader.started
	app.OpenCV()
	assert.False(t, app.State().CVVisible)

	close(pl.release)
	app.Wait()
}

func TestApp_OpenProject(t *testing.T) {
	app, host := mountLoaded(t, prefs.NewMemory())

	app.Dispatch(Event{Action: ActionOpenProject, Index: 0})
	app.Dispatch(Event{Action: ActionOpenProject, Index: 2})
	app.Dispatch(Event{Action: ActionOpenProject, Index: 99})

	require.Len(t, host.opened, 1)
	assert.Equal(t, "https://github.com/van-is-code/shoplite", host.opened[0])
}

func TestApp_Print(t *testing.T) {
	app, host := mountLoaded(t, prefs.NewMemory())
	app.OpenCV()

	app.Dispatch(Event{Action: ActionPrint})

	require.Len(t, host.printed, 1)
	doc := host.printed[0]
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, `id="cv-content"`)
	assert.NotContains(t, doc, "cv-controls")
	assert.True(t, app.State().CVVisible)
}

func TestApp_DispatchAfterUnmountIsIgnored(t *testing.T) {
	app, host := mountLoaded(t, prefs.NewMemory())
	app.Unmount()
	n := host.renderCount()

	app.Dispatch(Event{Action: ActionOpenCV})
	app.Dispatch(Event{Action: ActionToggleLanguage})
	app.Wait()

	assert.Equal(t, n, host.renderCount())
	assert.Empty(t, host.opened)
}
