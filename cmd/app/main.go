//go:build js && wasm

// Command app is the browser client. It mounts the portfolio view into #app
// and forwards clicks and key presses to it.
package main

import (
	"context"
	"strings"
	"syscall/js"

	"github.com/van-is-code/portfolio/internal/content"
	"github.com/van-is-code/portfolio/internal/prefs"
	"github.com/van-is-code/portfolio/internal/view"
)

type domHost struct {
	window js.Value
	root   js.Value
}

func (h *domHost) Render(markup string) {
	h.root.Set("innerHTML", markup)
}

func (h *domHost) Open(url string) {
	h.window.Call("open", url, "_blank", "noopener,noreferrer")
}

// Print writes the document into a fresh window so nothing but the CV is
// printed, then opens the print dialog there.
func (h *domHost) Print(document string) {
	w := h.window.Call("open", "", "_blank")
	if w.IsNull() || w.IsUndefined() {
		return
	}
	doc := w.Get("document")
	doc.Call("open")
	doc.Call("write", document)
	doc.Call("close")
	w.Call("focus")
	w.Call("print")
}

// chain collects the path from the event target up to the document element.
func chain(target js.Value) []view.Node {
	var nodes []view.Node
	for n := target; !n.IsNull() && !n.IsUndefined(); n = n.Get("parentElement") {
		if n.Get("nodeType").Int() != 1 {
			continue
		}
		nodes = append(nodes, view.Node{
			Tag:    strings.ToLower(n.Get("tagName").String()),
			Action: attr(n, "data-action"),
			Index:  attr(n, "data-index"),
		})
	}
	return nodes
}

func attr(n js.Value, name string) string {
	v := n.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

func main() {
	window := js.Global()
	document := window.Get("document")

	host := &domHost{window: window, root: document.Call("getElementById", "app")}
	app := view.NewApp(host, prefs.NewLocalStorage(), content.NewLoader())

	onClick := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if ev, ok := view.ResolveClick(chain(args[0].Get("target"))); ok {
			app.Dispatch(ev)
		}
		return nil
	})
	onKey := js.FuncOf(func(_ js.Value, args []js.Value) any {
		e := args[0]
		if ev, ok := view.ResolveKey(e.Get("key").String(), chain(e.Get("target"))); ok {
			e.Call("preventDefault")
			app.Dispatch(ev)
		}
		return nil
	})
	document.Call("addEventListener", "click", onClick)
	document.Call("addEventListener", "keydown", onKey)

	ctx, cancel := context.WithCancel(context.Background())
	onUnload := js.FuncOf(func(js.Value, []js.Value) any {
		cancel()
		app.Unmount()
		return nil
	})
	window.Call("addEventListener", "pagehide", onUnload)

	app.Mount(ctx)
	<-ctx.Done()

	onClick.Release()
	onKey.Release()
	onUnload.Release()
}
