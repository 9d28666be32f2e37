package content

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/en.json data/vi.json
var bundles embed.FS

// LoadFunc decodes one bundle. Every call returns a freshly allocated Portfolio.
type LoadFunc func() (*Portfolio, error)

var loaders = map[Language]LoadFunc{
	English:    embedded("data/en.json"),
	Vietnamese: embedded("data/vi.json"),
}

func embedded(name string) LoadFunc {
	return func() (*Portfolio, error) {
		raw, err := bundles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read bundle %s: %w", name, err)
		}
		return Decode(raw)
	}
}

// Decode parses a bundle, rejecting unknown fields.
func Decode(raw []byte) (*Portfolio, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	return &p, nil
}

// Raw returns the undecoded bundle for lang.
func Raw(lang Language) ([]byte, error) {
	return bundles.ReadFile("data/" + ParseLanguage(string(lang)).String() + ".json")
}

// Loader produces bundles by language from the embedded data assets.
type Loader struct{}

// NewLoader returns a Loader over the embedded bundles.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the bundle for lang. Unknown languages get the English bundle.
func (l *Loader) Load(ctx context.Context, lang Language) (*Portfolio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	load, ok := loaders[lang]
	if !ok {
		load = loaders[DefaultLanguage]
	}

	p, err := load()
	if err != nil {
		return nil, fmt.Errorf("load %s bundle: %w", lang, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p, nil
}
