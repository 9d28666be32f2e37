// Package view holds the portfolio page: UI state, the App component that
// drives loading and transitions, and the HTML renderers.
package view

import (
	"context"
	"log"
	"sync"

	"github.com/van-is-code/portfolio/internal/content"
	"github.com/van-is-code/portfolio/internal/prefs"
)

// Host is the environment the App renders into. Implementations must not call
// back into the App from these methods.
type Host interface {
	// Render replaces the displayed page with markup.
	Render(markup string)
	// Open opens url in a new browsing context without opener or referrer.
	Open(url string)
	// Print shows document in an isolated surface and starts the print dialog.
	Print(document string)
}

// Loader produces the bundle for a language.
type Loader interface {
	Load(ctx context.Context, lang content.Language) (*content.Portfolio, error)
}

// App is the portfolio view. It owns the UI state and the active bundle.
type App struct {
	host   Host
	store  prefs.Store
	loader Loader

	mu       sync.Mutex
	base     context.Context
	mounted  bool
	state    State
	data     *content.Portfolio
	dataLang content.Language

	// token of the in-flight load; a result is applied only while its
	// generation is current and its context is live.
	gen    uint64
	cancel context.CancelFunc

	loads sync.WaitGroup
}

func NewApp(host Host, store prefs.Store, loader Loader) *App {
	return &App{
		host:   host,
		store:  store,
		loader: loader,
		state:  NewState(content.DefaultLanguage),
	}
}

// Mount reads the stored language, shows the loading indicator and starts the
// first load. Loads are tied to ctx.
func (a *App) Mount(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mounted {
		return
	}
	a.mounted = true
	a.base = ctx
	a.state = NewState(prefs.Language(a.store))
	a.data = nil

	a.persistLocked()
	a.renderLocked()
	a.startLoadLocked(a.state.Language)
}

// Unmount tears the view down. Loads still in flight are discarded when they
// resolve.
func (a *App) Unmount() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.mounted {
		return
	}
	a.mounted = false
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.data = nil
}

// Wait blocks until every started load has resolved.
func (a *App) Wait() {
	a.loads.Wait()
}

// State returns a copy of the current UI state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Data returns the active bundle, nil while loading.
func (a *App) Data() *content.Portfolio {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.data
}

// SetLanguage switches to lang, persists it and loads its bundle. The current
// content stays on screen until the new bundle arrives.
func (a *App) SetLanguage(lang content.Language) {
	lang = content.ParseLanguage(string(lang))

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.mounted || lang == a.state.Language {
		return
	}
	a.state = a.state.WithLanguage(lang)
	a.persistLocked()
	a.startLoadLocked(lang)
}

// ToggleLanguage flips between English and Vietnamese.
func (a *App) ToggleLanguage() {
	a.SetLanguage(a.State().Language.Other())
}

func (a *App) OpenCV() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.mounted || a.data == nil || a.state.CVVisible {
		return
	}
	a.state = a.state.OpenCV()
	a.renderLocked()
}

func (a *App) CloseCV() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.mounted || !a.state.CVVisible {
		return
	}
	a.state = a.state.CloseCV()
	a.renderLocked()
}

// Print hands the printable CV to the host.
func (a *App) Print() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.mounted || a.data == nil {
		return
	}
	doc, err := RenderPrint(a.dataLang, a.data)
	if err != nil {
		log.Printf("Error rendering printable CV: %v", err)
		return
	}
	a.host.Print(doc)
}

// OpenProject opens the repository of project i. Projects without a
// repository are not interactive.
func (a *App) OpenProject(i int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.mounted || a.data == nil || i < 0 || i >= len(a.data.Projects) {
		return
	}
	p := a.data.Projects[i]
	if !p.HasRepository() {
		return
	}
	a.host.Open(p.GitHub)
}

// Dispatch applies a resolved DOM event.
func (a *App) Dispatch(ev Event) {
	switch ev.Action {
	case ActionToggleLanguage:
		a.ToggleLanguage()
	case ActionOpenCV:
		a.OpenCV()
	case ActionCloseCV:
		a.CloseCV()
	case ActionPrint:
		a.Print()
	case ActionOpenProject:
		a.OpenProject(ev.Index)
	}
}

func (a *App) startLoadLocked(lang content.Language) {
	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(a.base)
	a.cancel = cancel
	a.gen++
	gen := a.gen

	a.loads.Add(1)
	go func() {
		defer a.loads.Done()
		p, err := a.loader.Load(ctx, lang)
		a.apply(ctx, gen, lang, p, err)
	}()
}

func (a *App) apply(ctx context.Context, gen uint64, lang content.Language, p *content.Portfolio, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.mounted || gen != a.gen || ctx.Err() != nil {
		return
	}
	a.cancel()
	a.cancel = nil

	if err != nil {
		log.Printf("Error loading %s bundle: %v", lang, err)
		return
	}
	a.data = p
	a.dataLang = lang
	a.renderLocked()
}

func (a *App) persistLocked() {
	if err := prefs.SetLanguage(a.store, a.state.Language); err != nil {
		log.Printf("Error saving language preference: %v", err)
	}
}

func (a *App) renderLocked() {
	var (
		markup string
		err    error
	)
	if a.data == nil {
		markup, err = RenderLoading(a.state.Language)
	} else {
		markup, err = RenderApp(State{Language: a.dataLang, CVVisible: a.state.CVVisible}, a.data)
	}
	if err != nil {
		log.Printf("Error rendering view: %v", err)
		return
	}
	a.host.Render(markup)
}
