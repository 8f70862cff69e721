package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/etnz/perfchart"
	"github.com/etnz/perfchart/renderer"
	"github.com/etnz/perfchart/table"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/index.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// Query parameters.
const (
	paramPreset = "preset"
	paramFrom   = "from"
	paramTo     = "to"
	paramX      = "x"
	paramQuery  = "q"
	paramPanel  = "panel"
)

// paramError is an invalid query parameter.
type paramError struct {
	name string
	err  error
}

func (e *paramError) Error() string { return fmt.Sprintf("invalid parameter %q: %v", e.name, e.err) }
func (e *paramError) Unwrap() error { return e.err }

// fail writes the error response matching err.
func fail(w http.ResponseWriter, err error) {
	var (
		lerr *perfchart.DataLoadError
		perr *paramError
	)
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &lerr):
		status = http.StatusBadGateway
	case errors.As(err, &perr):
		status = http.StatusBadRequest
	}
	if status != http.StatusBadRequest {
		log.Printf("%d: %v", status, err)
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// chart loads the dataset and replays the interaction of the request on a new chart.
func (s *Server) chart(r *http.Request) (*perfchart.Chart, *dataset, error) {
	ds, err := s.data.get(r.Context())
	if err != nil {
		return nil, nil, err
	}
	c, err := perfchart.NewChart(ds.series)
	if err != nil {
		return nil, nil, err
	}
	q := r.URL.Query()

	if v := q.Get(paramPreset); v != "" {
		p, err := perfchart.ParsePreset(v)
		if err != nil {
			return nil, nil, &paramError{paramPreset, err}
		}
		c.SelectPreset(p)
	}

	from, to := q.Get(paramFrom), q.Get(paramTo)
	switch {
	case from != "" && to != "":
		f, err := perfchart.ParseDate(from)
		if err != nil {
			return nil, nil, &paramError{paramFrom, err}
		}
		t, err := perfchart.ParseDate(to)
		if err != nil {
			return nil, nil, &paramError{paramTo, err}
		}
		c.OnBrush(perfchart.NewRange(f, t))
	case from != "":
		return nil, nil, &paramError{paramTo, errors.New("missing")}
	case to != "":
		return nil, nil, &paramError{paramFrom, errors.New("missing")}
	}

	if v := q.Get(paramX); v != "" {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, nil, &paramError{paramX, err}
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, nil, &paramError{paramX, errors.New("not a finite number")}
		}
		c.OnPointerMove(x)
	}
	return c, ds, nil
}

// link returns the query of r with the given parameters replaced. An empty value removes the parameter.
func link(r *http.Request, kv ...string) string {
	q := r.URL.Query()
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			q.Del(kv[i])
		} else {
			q.Set(kv[i], kv[i+1])
		}
	}
	if len(q) == 0 {
		return "?"
	}
	return "?" + q.Encode()
}

func (s *Server) options(r *http.Request) renderer.Options {
	return renderer.Options{
		Title: s.cfg.Title,
		PresetHref: func(p perfchart.Preset) string {
			return link(r, paramPreset, p.String(), paramFrom, "", paramTo, "", paramX, "")
		},
	}
}

type indexData struct {
	Title        string
	Chart        template.HTML
	PNG          string
	Summary      template.HTML
	Holdings     template.HTML
	Trades       template.HTML
	Query        string
	Keep         map[string]string // chart parameters kept by the search form
	HoldingsHref string
	TradesHref   string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	c, ds, err := s.chart(r)
	if err != nil {
		fail(w, err)
		return
	}
	panel := r.URL.Query().Get(paramPanel)
	if panel == "" {
		panel = table.HoldingPanel
	}

	var svg bytes.Buffer
	if err := renderer.RenderSVG(&svg, c, s.options(r)); err != nil {
		fail(w, err)
		return
	}
	report := renderer.NewReport(c, s.cfg.Title, ds.summary)
	report.Snapshot = nil // the holdings have their own panel
	var summary bytes.Buffer
	if err := markdown.Convert([]byte(renderer.RenderSummary(report)), &summary); err != nil {
		fail(w, err)
		return
	}
	data := indexData{
		Title:        s.cfg.Title,
		Chart:        template.HTML(svg.String()),
		PNG:          "/chart.png" + strings.TrimSuffix(link(r, paramQuery, "", paramPanel, ""), "?"),
		Summary:      template.HTML(summary.String()),
		Query:        r.URL.Query().Get(paramQuery),
		Keep:         map[string]string{},
		HoldingsHref: link(r, paramPanel, table.HoldingPanel),
		TradesHref:   link(r, paramPanel, table.TradePanel),
	}
	if data.Title == "" {
		data.Title = renderer.DefaultTitle
	}
	for _, k := range []string{paramPreset, paramFrom, paramTo} {
		if v := r.URL.Query().Get(k); v != "" {
			data.Keep[k] = v
		}
	}
	if ds.summary != nil {
		h, err := table.HoldingsHTML(&ds.summary.Latest)
		if err != nil {
			fail(w, err)
			return
		}
		data.Holdings = template.HTML(h)
	}
	if len(ds.trades) > 0 {
		h, err := table.TradesHTML(ds.trades)
		if err != nil {
			fail(w, err)
			return
		}
		data.Trades = template.HTML(h)
	}

	var page bytes.Buffer
	if err := indexTemplate.Execute(&page, data); err != nil {
		fail(w, err)
		return
	}
	doc, err := goquery.NewDocumentFromReader(&page)
	if err != nil {
		fail(w, err)
		return
	}
	if data.Query != "" && data.Holdings != "" {
		if _, err := table.FilterRows(doc, table.HoldingsID, data.Query); err != nil {
			fail(w, err)
			return
		}
	}
	if err := table.TogglePanel(doc, panel); err != nil {
		fail(w, &paramError{paramPanel, err})
		return
	}
	out, err := doc.Html()
	if err != nil {
		fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, out)
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	ds, err := s.data.get(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	w.Header().Set("Content-Type", ds.contentType())
	w.Write(ds.raw)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	c, _, err := s.chart(r)
	if err != nil {
		fail(w, err)
		return
	}
	var b bytes.Buffer
	if err := renderer.RenderSVG(&b, c, s.options(r)); err != nil {
		fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(b.Bytes())
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	c, _, err := s.chart(r)
	if err != nil {
		fail(w, err)
		return
	}
	var b bytes.Buffer
	if err := renderer.RenderPNG(&b, c, s.options(r)); err != nil {
		fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(b.Bytes())
}

// View is the state of the chart returned by /api/view.
type View struct {
	Mode    string               `json:"mode"`
	Label   string               `json:"label"`
	Preset  string               `json:"preset,omitempty"`
	Brush   perfchart.Range      `json:"brush"`
	Focus   perfchart.ViewState  `json:"focus"`
	Context perfchart.ViewState  `json:"context"`
	Tooltip *perfchart.Tooltip   `json:"tooltip,omitempty"`
	Stats   perfchart.Statistics `json:"stats"` // of the whole table
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	c, _, err := s.chart(r)
	if err != nil {
		fail(w, err)
		return
	}
	brush, _ := c.Brush()
	v := View{
		Mode:    c.Mode().String(),
		Label:   c.Label(),
		Brush:   brush,
		Focus:   c.Focus(),
		Context: c.Context(),
		Stats:   perfchart.Stats(c.Series()),
	}
	if p, ok := c.Preset(); ok && c.Mode() == perfchart.Brushed {
		v.Preset = p.String()
	}
	if tip := c.Tooltip(); tip.Visible {
		v.Tooltip = &tip
	}
	writeJSON(w, http.StatusOK, v)
}

// TooltipResponse is returned by /api/tooltip.
type TooltipResponse struct {
	perfchart.Tooltip
	Lines []string `json:"lines"`
}

func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get(paramX) == "" {
		fail(w, &paramError{paramX, errors.New("missing")})
		return
	}
	c, _, err := s.chart(r)
	if err != nil {
		fail(w, err)
		return
	}
	tip := c.Tooltip()
	writeJSON(w, http.StatusOK, TooltipResponse{Tooltip: tip, Lines: tip.Lines()})
}
