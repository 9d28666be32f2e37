package main

var (
	RootHelp = `portfolio builds and serves a single-page portfolio with a printable CV.
	The page ships in English and Vietnamese; the visitor's choice is remembered in the browser.`

	ServeHelp = `Serves the built site. Any path that is not a file under the assets directory
	gets the entry document, so the client decides what to show.

	The port comes from --port, then PORT, then defaults to 3000.`

	BuildHelp = `Writes the entry document, the printable CVs (cv/en.html, cv/vi.html) and
	wasm_exec.js into the assets directory after checking both language bundles.

	The client itself is compiled separately:
	    GOOS=js GOARCH=wasm go build -o dist/app.wasm ./cmd/app`

	ValidateHelp = `Checks both language bundles: same field set, every required field present,
	valid email and repository URLs.`

	ExportHelp = `Renders the printable CV in headless Chrome and saves it as the PDF offered
	by the "Download CV" link. Requires Chrome or Chromium on the PATH.`
)
