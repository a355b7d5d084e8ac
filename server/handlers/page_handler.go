package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"

	"hotel-forecast/models"
	"hotel-forecast/util"

	"github.com/go-echarts/go-echarts/v2/render"
	"github.com/gorilla/mux"
)

//go:embed templates/*.html
var templateFS embed.FS

// Tab identifiers, in display order.
const (
	TAB_SUMMARY  = "summary"
	TAB_DETAIL   = "detail"
	TAB_INSIGHTS = "insights"

	TAB_PATH_VAR = "tab"

	PAGE_TEMPLATE = "dashboard"
)

// Notices replacing the page when a render cycle fails.
const (
	DATA_UNAVAILABLE_NOTICE = "❌ 데이터 파일을 찾을 수 없습니다. data 폴더에 파일이 있는지 확인해주세요."
	ERROR_NOTICE_PREFIX     = "❌ 오류 발생: "
)

// AllTabs lists every tab of the dashboard.
var AllTabs = []string{TAB_SUMMARY, TAB_DETAIL, TAB_INSIGHTS}

var tabLabels = map[string]string{
	TAB_SUMMARY:  "📈 예측 요약",
	TAB_DETAIL:   "📋 상세 데이터",
	TAB_INSIGHTS: "💡 인사이트",
}

type tabView struct {
	ID     string
	Label  string
	Active bool
}

type metricCard struct {
	Label string
	Value string
}

type chartView struct {
	Element template.HTML
	Script  template.HTML
}

type recordRow struct {
	Date       string
	Prediction string
	LowerBound string
	UpperBound string
}

type insightCard struct {
	Date  string
	Value string
}

type pageView struct {
	Tabs    []tabView
	Visible map[string]bool
	Notice  string
	Assets  []string
	CycleID string

	Metrics       []metricCard
	ForecastChart chartView
	Records       []recordRow
	DailyChart    chartView
	Maximum       insightCard
	Minimum       insightCard
	WeeklyChart   chartView
}

// PageHandler renders the dashboard as HTML.
type PageHandler struct {
	dashboard DashboardProvider
	templates *template.Template
}

func NewPageHandler(dashboard DashboardProvider) *PageHandler {
	return &PageHandler{
		dashboard: dashboard,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// GetIndex handles GET /
func (h *PageHandler) GetIndex(w http.ResponseWriter, r *http.Request) {
	h.serveTab(w, r, TAB_SUMMARY)
}

// GetTab handles GET /tabs/{tab}
func (h *PageHandler) GetTab(w http.ResponseWriter, r *http.Request) {
	tab := mux.Vars(r)[TAB_PATH_VAR]
	if _, ok := tabLabels[tab]; !ok {
		http.NotFound(w, r)
		return
	}
	h.serveTab(w, r, tab)
}

func (h *PageHandler) serveTab(w http.ResponseWriter, r *http.Request, tab string) {
	status := http.StatusOK
	var buf bytes.Buffer

	d, err := h.dashboard.Build(r.Context())
	if err != nil {
		log.Errorf("Render cycle for tab %s failed: %v", tab, err)
		status = errorStatus(err)
		err = h.RenderError(&buf, err)
	} else {
		err = h.Render(&buf, d, tab)
	}
	if err != nil {
		log.Errorf("Failed to render page: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Render writes the dashboard page with the given tabs visible. The first
// visible tab is marked active.
func (h *PageHandler) Render(w io.Writer, d *models.Dashboard, tabs ...string) error {
	view := pageView{
		Tabs:    tabViews(tabs),
		Visible: make(map[string]bool, len(tabs)),
		CycleID: d.CycleID,
	}
	for _, tab := range tabs {
		view.Visible[tab] = true
	}

	if view.Visible[TAB_SUMMARY] {
		view.Metrics = []metricCard{
			{Label: "평균 예상 예약", Value: util.FormatCount(d.Summary.Average)},
			{Label: "최대 예상 예약", Value: util.FormatCount(d.Summary.Maximum)},
			{Label: "최소 예상 예약", Value: util.FormatCount(d.Summary.Minimum)},
			{Label: "30일 총 예약", Value: util.FormatTotal(d.Summary.Total)},
		}
		line := util.ForecastLineChart(d.Chart)
		view.ForecastChart = snippetView(line.RenderSnippet())
		view.Assets = line.JSAssets.Values
	}
	if view.Visible[TAB_DETAIL] {
		for _, r := range d.Forecast {
			view.Records = append(view.Records, recordRow{
				Date:       r.Date.String(),
				Prediction: util.FormatValue(r.Prediction),
				LowerBound: util.FormatValue(r.LowerBound),
				UpperBound: util.FormatValue(r.UpperBound),
			})
		}
		bar := util.DailyForecastBarChart(d.Forecast)
		view.DailyChart = snippetView(bar.RenderSnippet())
		view.Assets = bar.JSAssets.Values
	}
	if view.Visible[TAB_INSIGHTS] {
		view.Maximum = insightCard{Date: util.FormatKoreanDate(d.Maximum.Date), Value: util.FormatCount(d.Maximum.Value)}
		view.Minimum = insightCard{Date: util.FormatKoreanDate(d.Minimum.Date), Value: util.FormatCount(d.Minimum.Value)}
		bar := util.WeeklyBarChart(d.Weekly)
		view.WeeklyChart = snippetView(bar.RenderSnippet())
		view.Assets = bar.JSAssets.Values
	}

	return h.templates.ExecuteTemplate(w, PAGE_TEMPLATE, view)
}

// RenderError writes the page with the failure notice in place of the tabs.
func (h *PageHandler) RenderError(w io.Writer, err error) error {
	return h.templates.ExecuteTemplate(w, PAGE_TEMPLATE, pageView{Notice: errorNotice(err)})
}

func errorNotice(err error) string {
	if errors.Is(err, models.ErrDataUnavailable) {
		return DATA_UNAVAILABLE_NOTICE
	}
	return ERROR_NOTICE_PREFIX + err.Error()
}

func errorStatus(err error) int {
	if errors.Is(err, models.ErrDataUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func tabViews(visible []string) []tabView {
	active := ""
	if len(visible) > 0 {
		active = visible[0]
	}
	views := make([]tabView, 0, len(AllTabs))
	for _, id := range AllTabs {
		views = append(views, tabView{ID: id, Label: tabLabels[id], Active: id == active})
	}
	return views
}

func snippetView(s render.ChartSnippet) chartView {
	return chartView{Element: template.HTML(s.Element), Script: template.HTML(s.Script)}
}
