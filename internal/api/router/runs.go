package router

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/kobe/internal/apperr"
	"github.com/DjordjeVuckovic/kobe/internal/eval/correlation"
	"github.com/DjordjeVuckovic/kobe/internal/eval/report"
	"github.com/DjordjeVuckovic/kobe/internal/eval/scorer"
	"github.com/DjordjeVuckovic/kobe/internal/storage"
	"github.com/labstack/echo/v4"
)

type RunsRouter struct {
	e      *echo.Echo
	reader storage.Reader
}

func NewRunsRouter(e *echo.Echo, reader storage.Reader) *RunsRouter {
	return &RunsRouter{
		e:      e,
		reader: reader,
	}
}

func (r *RunsRouter) Bind() {
	g := r.e.Group("/runs/latest")
	g.GET("", r.latestRunHandler)
	g.GET("/scores", r.scoresHandler)
	g.GET("/correlations", r.correlationsHandler)
	g.GET("/reports/:view", r.reportViewHandler)
}

// RunSummary describes a stored evaluation run.
type RunSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
	Scores        int       `json:"scores"`
	LanguagePairs []string  `json:"language_pairs"`
	Views         []string  `json:"views"`
}

// latestRunHandler godoc
// @Summary Latest evaluation run
// @Description Returns the summary of the most recent evaluation run
// @Tags runs
// @Produce json
// @Success 200 {object} RunSummary
// @Failure 404 {object} map[string]string
// @Router /runs/latest [get]
func (r *RunsRouter) latestRunHandler(c echo.Context) error {
	run, err := r.latest(c)
	if err != nil {
		return err
	}

	summary := RunSummary{
		ID:        run.ID.String(),
		Name:      run.Name,
		CreatedAt: run.CreatedAt,
		Scores:    len(run.Scores),
	}
	if run.Report != nil {
		if run.Report.Correlations != nil {
			summary.LanguagePairs = run.Report.Correlations.LanguagePairs
		}
		for _, v := range run.Report.Views {
			summary.Views = append(summary.Views, v.Name)
		}
	}

	return c.JSON(http.StatusOK, summary)
}

// scoresHandler godoc
// @Summary Entity recall scores
// @Description Returns the reference-free and reference-based entity recall of every system, optionally for one language pair
// @Tags runs
// @Produce json
// @Param lp query string false "Language pair, e.g. de-en"
// @Success 200 {array} scorer.Record
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /runs/latest/scores [get]
func (r *RunsRouter) scoresHandler(c echo.Context) error {
	lp := c.QueryParam("lp")
	if lp != "" {
		if src, tgt, ok := strings.Cut(lp, "-"); !ok || src == "" || tgt == "" {
			return apperr.NewValidation("lp must look like <src>-<tgt>")
		}
	}

	run, err := r.latest(c)
	if err != nil {
		return err
	}

	scores := make([]scorer.Record, 0, len(run.Scores))
	for _, s := range run.Scores {
		if lp == "" || s.LanguagePair == lp {
			scores = append(scores, s)
		}
	}

	return c.JSON(http.StatusOK, scores)
}

// correlationsHandler godoc
// @Summary Correlations with DA
// @Description Returns the Pearson correlation of every metric with the human DA scores per language pair
// @Tags runs
// @Produce json
// @Success 200 {object} correlation.Table
// @Failure 404 {object} map[string]string
// @Router /runs/latest/correlations [get]
func (r *RunsRouter) correlationsHandler(c echo.Context) error {
	run, err := r.latest(c)
	if err != nil {
		return err
	}
	if run.Report == nil || run.Report.Correlations == nil {
		return c.JSON(http.StatusOK, &correlation.Table{})
	}
	return c.JSON(http.StatusOK, run.Report.Correlations)
}

// reportViewHandler godoc
// @Summary Report view
// @Description Returns one report view. format=text renders it as a plain text table.
// @Tags runs
// @Produce json
// @Produce plain
// @Param view path string true "View name, e.g. to-en or reference"
// @Param format query string false "json (default) or text"
// @Success 200 {object} report.View
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /runs/latest/reports/{view} [get]
func (r *RunsRouter) reportViewHandler(c echo.Context) error {
	format := c.QueryParam("format")
	if format != "" && format != "json" && format != "text" {
		return apperr.NewValidation("format must be json or text")
	}

	run, err := r.latest(c)
	if err != nil {
		return err
	}

	name := c.Param("view")
	var view *report.View
	if run.Report != nil {
		for i := range run.Report.Views {
			if run.Report.Views[i].Name == name {
				view = &run.Report.Views[i]
				break
			}
		}
	}
	if view == nil {
		return echo.NewHTTPError(http.StatusNotFound, "report view "+name+" not found")
	}

	if format == "text" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
		c.Response().WriteHeader(http.StatusOK)
		return report.WriteView(*view, c.Response())
	}
	return c.JSON(http.StatusOK, view)
}

func (r *RunsRouter) latest(c echo.Context) (*storage.Run, error) {
	run, err := r.reader.LatestRun(c.Request().Context())
	if errors.Is(err, storage.ErrNoRuns) {
		return nil, echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}
