// ============================================================================
// strview - Character View Toolkit
// ============================================================================
//
// Package:     render
// Description: Text and JSON output of query results
// Author:      Mike Stoffels
// Created:     2026-10-03
// License:     MIT
// ============================================================================

package render

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	mdwerror "github.com/msto63/strview/foundation/core/error"
	"github.com/msto63/strview/foundation/core/i18n"
	"github.com/msto63/strview/internal/query"
	"github.com/msto63/strview/pkg/core/config"
	"github.com/msto63/strview/pkg/core/version"
)

//go:embed locales/*.toml
var localeFiles embed.FS

var catalog = func() *i18n.Manager {
	m, err := i18n.New(i18n.Options{
		DefaultLocale: config.DefaultLanguage,
		FS:            localeFiles,
		Dir:           "locales",
	})
	if err != nil {
		panic(err)
	}
	return m
}()

// Languages returns the locales text output is available in
func Languages() []string {
	return catalog.Locales()
}

// Renderer writes results to one output. Without color, matches are
// wrapped in brackets instead of being highlighted.
type Renderer struct {
	out    io.Writer
	json   bool
	color  bool
	styles styles
	msg    *i18n.Manager
}

// New creates a renderer for out following the output settings. A
// language without catalog falls back to German.
func New(out io.Writer, cfg config.OutputConfig) *Renderer {
	r := lipgloss.NewRenderer(out)
	if !cfg.Color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:    out,
		json:   cfg.Format == config.OutputJSON,
		color:  cfg.Color,
		styles: newStyles(r, cfg.Highlight),
		msg:    messages(cfg.Language),
	}
}

func messages(language string) *i18n.Manager {
	if language == config.LanguageAuto {
		language = i18n.FromEnvironment()
	}
	if m, err := catalog.WithLocale(language); err == nil {
		return m
	}
	return catalog
}

// Language returns the locale text output is written in
func (r *Renderer) Language() string {
	return r.msg.CurrentLocale()
}

// Result writes a query result
func (r *Renderer) Result(res *query.Result) error {
	if r.json {
		return r.writeJSON(res)
	}

	var b strings.Builder
	b.WriteString(r.styles.title.Render(string(res.Operation)))
	b.WriteString(r.styles.muted.Render(r.msg.T("result.title", map[string]interface{}{
		"Width": res.Width,
		"Size":  res.Size,
	})))
	b.WriteByte('\n')

	if res.Inspect != nil {
		r.inspection(&b, res.Inspect)
	}
	if res.Found != nil {
		r.line(&b, "labels.found", r.yesNo(*res.Found))
	}
	if res.Position != nil {
		r.line(&b, "labels.position", strconv.Itoa(*res.Position))
	}
	if len(res.Positions) > 0 {
		r.line(&b, "labels.positions", joinInts(res.Positions))
	}
	if res.Count != nil {
		r.line(&b, "labels.count", strconv.Itoa(*res.Count))
	}
	if res.Ordering != nil {
		r.line(&b, "labels.ordering", r.ordering(*res.Ordering))
	}
	if res.Value != nil {
		r.line(&b, "labels.value", strconv.Quote(*res.Value))
	}
	if len(res.Segments) > 0 {
		r.line(&b, "labels.matches", r.Highlight(res.Segments))
	}
	if res.Parts != nil {
		r.line(&b, "labels.parts", strconv.Itoa(len(res.Parts)))
		for i, part := range res.Parts {
			fmt.Fprintf(&b, "%*d  %s\n", labelWidth-2, i, strconv.Quote(part))
		}
	}
	if res.Truncated {
		b.WriteString(r.styles.muted.Render(r.msg.T("result.truncated")))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Highlight joins segments, marking the matched ones
func (r *Renderer) Highlight(segments []query.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		switch {
		case !s.Match:
			b.WriteString(s.Text)
		case r.color:
			b.WriteString(r.styles.match.Render(s.Text))
		default:
			b.WriteString("[" + s.Text + "]")
		}
	}
	return b.String()
}

// Version writes build information
func (r *Renderer) Version(info version.Info) error {
	if r.json {
		return r.writeJSON(info)
	}

	var b strings.Builder
	b.WriteString(r.styles.title.Render("strview v" + info.CLI))
	b.WriteByte('\n')
	r.line(&b, "labels.library", info.Library)
	r.line(&b, "labels.git_commit", info.GitCommit)
	r.line(&b, "labels.build_date", info.BuildDate)
	r.line(&b, "labels.go_version", info.GoVersion)
	r.line(&b, "labels.platform", info.Platform)

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Error writes err. Verbose output adds code, operation and details of
// structured errors.
func (r *Renderer) Error(err error, verbose bool) {
	msg := err.Error()
	var mdwErr *mdwerror.Error
	if verbose && errors.As(err, &mdwErr) {
		if error(mdwErr) == err {
			msg = mdwErr.String()
		} else {
			msg += "\n" + mdwErr.String()
		}
	}
	fmt.Fprintln(r.out, r.styles.err.Render(r.msg.T("errors.prefix")+": "+msg))
}

// line writes the translated label key followed by value
func (r *Renderer) line(b *strings.Builder, key, value string) {
	b.WriteString(r.styles.label.Render(r.msg.T(key) + ":"))
	b.WriteString(value)
	b.WriteByte('\n')
}

func (r *Renderer) inspection(b *strings.Builder, info *query.Inspection) {
	r.line(b, "labels.empty", r.yesNo(info.Empty))
	r.line(b, "labels.blank", r.yesNo(info.Blank))
	r.line(b, "labels.runes", strconv.Itoa(info.Runes))
	r.line(b, "labels.max_size", strconv.Itoa(info.MaxSize))
	if !info.Empty {
		r.line(b, "labels.front", strconv.Quote(info.Front))
		r.line(b, "labels.back", strconv.Quote(info.Back))
	}
	r.line(b, "labels.units", strings.Join(info.Units, " "))
}

func (r *Renderer) yesNo(v bool) string {
	if v {
		return r.styles.ok.Render(r.msg.T("words.yes"))
	}
	return r.styles.err.Render(r.msg.T("words.no"))
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (r *Renderer) ordering(v int) string {
	switch {
	case v < 0:
		return r.msg.T("words.less") + " (-1)"
	case v > 0:
		return r.msg.T("words.greater") + " (1)"
	default:
		return r.msg.T("words.equal") + " (0)"
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
