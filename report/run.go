package report

import (
	"fmt"
	"io"

	"github.com/feastline/feastline/engine"
	"go.uber.org/zap"
)

// ============================================================================
// RUN — the fixed ten-question battery
// ============================================================================
// Questions are independent and order-insensitive among themselves; they run
// in report order only so the output is stable. A failing question produces a
// diagnostic line and the run continues.
// ============================================================================

// Line is one rendered answer of the report.
type Line struct {
	Num   int
	Title string
	Text  string
	Err   error
}

type question struct {
	num     int
	title   string
	compute func(engine.RecordView, *config) (string, error)
}

var questions = []question{
	{1, "Top revenue city (Gold members)", GoldRevenueCity},
	{2, "Top average order value cuisine", TopAOVCuisine},
	{3, "Users above the spend threshold", BigSpenderCount},
	{4, "Top revenue rating band", TopRatingBandRevenue},
	{5, "Top average order value city (Gold members)", TopGoldAOVCity},
	{6, "Cuisine with fewest distinct restaurants", RarestCuisine},
	{7, "Gold membership share", GoldMemberShare},
	{8, "Top boutique restaurant by average order value", TopBoutiqueRestaurant},
	{9, "Top revenue membership and cuisine pair", TopMembershipCuisine},
	{10, "Top revenue quarter", TopQuarter},
}

// Run computes all ten answers over the view. The view is read-only and no
// state is shared between questions, so re-running over the same persisted
// dataset always yields identical lines.
func Run(view engine.RecordView, opts ...Option) []Line {
	cfg := applyOptions(opts)

	lines := make([]Line, 0, len(questions))
	for _, q := range questions {
		text, err := q.compute(view, cfg)
		if err != nil {
			cfg.Log.Warn("question failed",
				zap.Int("question", q.num),
				zap.String("title", q.title),
				zap.Error(err))
		}
		lines = append(lines, Line{Num: q.num, Title: q.title, Text: text, Err: err})
	}
	return lines
}

// Render writes the ten labeled report lines.
func Render(w io.Writer, lines []Line) {
	for _, l := range lines {
		if l.Err != nil {
			fmt.Fprintf(w, "%d. %s: unavailable (%v)\n", l.Num, l.Title, l.Err)
			continue
		}
		fmt.Fprintf(w, "%d. %s: %s\n", l.Num, l.Title, l.Text)
	}
}
