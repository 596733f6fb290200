package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/models"
)

const (
	plotWidth  = 80
	plotHeight = 16
	rateFactor = 1.1
)

// Explorer is a bubbletea model that re-integrates on every parameter change.
type Explorer struct {
	cfg      config.Config
	rk4      *integrators.RK4
	numeric  dynamo.Trajectory
	analytic dynamo.Trajectory
	report   analysis.Report
	err      error
	width    int
	showHelp bool
}

func NewExplorer(cfg *config.Config) (Explorer, error) {
	if err := cfg.Validate(); err != nil {
		return Explorer{}, err
	}
	e := Explorer{
		cfg:      *cfg,
		rk4:      integrators.NewRK4(),
		width:    plotWidth,
		showHelp: true,
	}
	e.recompute()
	return e, e.err
}

func (e Explorer) Config() config.Config { return e.cfg }

func (e Explorer) Numeric() dynamo.Trajectory { return e.numeric }

func (e Explorer) Init() tea.Cmd {
	return nil
}

// Update handles key input and resizes.
func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return e, tea.Quit
		case "up", "k":
			e.cfg.Steps++
		case "down", "j":
			if e.cfg.Steps > 0 {
				e.cfg.Steps--
			}
		case "pgup", "+":
			e.cfg.Steps = max(1, e.cfg.Steps*2)
		case "pgdown", "-":
			e.cfg.Steps /= 2
		case "right", "l":
			e.cfg.Params.R *= rateFactor
		case "left", "h":
			e.cfg.Params.R /= rateFactor
		case "e":
			e.cfg.IncludeEnd = !e.cfg.IncludeEnd
		case "a":
			e.cfg.AlignStart = !e.cfg.AlignStart
		case "?":
			e.showHelp = !e.showHelp
			return e, nil
		default:
			return e, nil
		}
		e.recompute()
	case tea.WindowSizeMsg:
		e.width = max(20, min(msg.Width-12, 160))
	}
	return e, nil
}

func (e *Explorer) recompute() {
	e.err = nil
	e.report = analysis.Report{}

	m, err := e.cfg.BuildModel()
	if err != nil {
		e.err = err
		return
	}

	e.rk4.IncludeEnd = e.cfg.IncludeEnd
	e.numeric = e.rk4.Integrate(m.Func(), e.cfg.Y0, e.cfg.Interval, e.cfg.Steps)
	e.analytic = models.Curve(m, e.cfg.Y0, e.cfg.Interval, e.cfg.CurvePoints)

	if len(e.numeric) == 0 {
		return
	}
	e.report, e.err = analysis.Compare(e.numeric, models.Exact(m, e.cfg.Y0))
}

func (e Explorer) View() string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("odelab explorer · %s", e.cfg.Model)))
	sb.WriteString("\n\n")

	caption := fmt.Sprintf("n=%d  r=%.4g  k=%.4g", e.cfg.Steps, e.cfg.Params.R, e.cfg.Params.K)
	sb.WriteString(PlotComparison(e.numeric, e.analytic, plotHeight, e.width, caption))
	sb.WriteString("\n\n")

	stats := []Stat{
		Statf("steps", "%d", e.cfg.Steps),
		Statf("samples", "%d", len(e.numeric)),
		Statf("evaluations", "%d", e.rk4.Evaluations()),
		Statf("include end", "%t", e.cfg.IncludeEnd),
		Statf("align start", "%t", e.cfg.AlignStart),
	}
	if e.cfg.Steps > 0 {
		stats = append(stats, Statf("h", "%.6g", e.cfg.Interval.StepSize(e.cfg.Steps)))
	}
	if e.report.Samples > 0 {
		stats = append(stats,
			Statf("max |err|", "%.6g", e.report.MaxAbs),
			Statf("mean |err|", "%.6g", e.report.MeanAbs),
			Statf("rms", "%.6g", e.report.RMS),
		)
	}
	sb.WriteString(Panel("accuracy", stats))

	switch {
	case e.err != nil:
		sb.WriteString("\n" + WarnStyle.Render(e.err.Error()))
	case len(e.numeric) == 0:
		sb.WriteString("\n" + WarnStyle.Render("no steps: empty trajectory"))
	case !e.numeric.IsValid():
		sb.WriteString("\n" + WarnStyle.Render("trajectory contains NaN or Inf"))
	}

	if e.showHelp {
		sb.WriteString("\n" + HelpStyle.Render("↑/↓ steps ±1 · +/- steps ×2 · ←/→ rate · e include end · a align start · ? help · q quit"))
	}
	sb.WriteString("\n")
	return sb.String()
}
