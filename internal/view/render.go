package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/van-is-code/portfolio/internal/content"
)

const (
	// Brand is shown in the navigation bar.
	Brand = "Van-is-code"

	// MaxLandingHighlights caps the highlight bullets on a landing project card.
	MaxLandingHighlights = 3

	// CVDocumentPath is the static PDF offered by the overlay's download link.
	CVDocumentPath = "/files/cv.pdf"
	// CVDownloadName is the filename the PDF is saved under.
	CVDownloadName = "Thuc_tap_sinh_phat_trien_phan_mem.pdf"

	copyrightYear = 2025
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("view").Funcs(template.FuncMap{
	"join":   strings.Join,
	"column": newSkillColumn,
}).ParseFS(templateFS, "templates/*.tmpl"))

type page struct {
	Lang      content.Language
	Toggle    string
	Brand     string
	L         Labels
	Data      *content.Portfolio
	CVVisible bool
	Mailto    template.URL
	Tel       template.URL
	Projects  []projectCard
	Download  download
	Year      int
}

type projectCard struct {
	content.Project
	Index      int
	Highlights []string
}

type download struct {
	Href string
	Name string
}

type skillColumn struct {
	Key    string
	Title  string
	Skills []content.Skill
}

func newSkillColumn(key, title string, skills []content.Skill) skillColumn {
	return skillColumn{Key: key, Title: title, Skills: skills}
}

// LandingHighlights returns the highlights shown on the landing card for p.
func LandingHighlights(p content.Project) []string {
	if len(p.Highlights) <= MaxLandingHighlights {
		return p.Highlights
	}
	return p.Highlights[:MaxLandingHighlights]
}

// MailtoURL builds the mailto: link for an address.
func MailtoURL(email string) template.URL {
	return template.URL("mailto:" + strings.TrimSpace(email))
}

// TelURL builds the tel: link for a phone number.
func TelURL(phone string) template.URL {
	return template.URL("tel:" + strings.TrimSpace(phone))
}

func newPage(s State, data *content.Portfolio) page {
	lang := content.ParseLanguage(string(s.Language))
	p := page{
		Lang:      lang,
		Toggle:    strings.ToUpper(lang.Other().String()),
		Brand:     Brand,
		L:         LabelsFor(lang),
		Data:      data,
		CVVisible: s.CVVisible,
		Download:  download{Href: CVDocumentPath, Name: CVDownloadName},
		Year:      copyrightYear,
	}
	if data == nil {
		return p
	}

	p.Mailto = MailtoURL(data.Personal.Email)
	p.Tel = TelURL(data.Personal.Phone)
	p.Projects = make([]projectCard, 0, len(data.Projects))
	for i, proj := range data.Projects {
		p.Projects = append(p.Projects, projectCard{
			Project:    proj,
			Index:      i,
			Highlights: LandingHighlights(proj),
		})
	}
	return p
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderApp renders the whole page for s: navigation, landing, the CV overlay
// when s.CVVisible is set, and the footer.
func RenderApp(s State, data *content.Portfolio) (string, error) {
	if data == nil {
		return "", fmt.Errorf("render app: no bundle loaded")
	}
	return execute("app", newPage(s, data))
}

// RenderLoading renders the placeholder shown until the first bundle arrives.
func RenderLoading(lang content.Language) (string, error) {
	return execute("loading", newPage(NewState(lang), nil))
}

// RenderPrint renders a standalone document holding only the CV body, laid
// out for A4 pages.
func RenderPrint(lang content.Language, data *content.Portfolio) (string, error) {
	if data == nil {
		return "", fmt.Errorf("render print: no bundle loaded")
	}
	return execute("print", newPage(NewState(lang), data))
}

// ShellOptions configures the entry document.
type ShellOptions struct {
	Lang     content.Language
	Title    string
	WasmExec string
	WasmPath string
}

// RenderShell renders the entry document that boots the client.
func RenderShell(opts ShellOptions) (string, error) {
	if opts.Title == "" {
		opts.Title = Brand
	}
	if opts.WasmExec == "" {
		opts.WasmExec = "/wasm_exec.js"
	}
	if opts.WasmPath == "" {
		opts.WasmPath = "/app.wasm"
	}
	lang := content.ParseLanguage(string(opts.Lang))
	return execute("shell", struct {
		ShellOptions
		Lang content.Language
		L    Labels
	}{opts, lang, LabelsFor(lang)})
}
