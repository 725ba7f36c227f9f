package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lox/holdemsim/internal/simulator"
	"github.com/lox/holdemsim/poker"
)

// Renderer writes reports to a terminal.
type Renderer struct {
	out     io.Writer
	printer *message.Printer

	headerStyle   lipgloss.Style
	handStyle     lipgloss.Style
	winStyle      lipgloss.Style
	mutedStyle    lipgloss.Style
	categoryStyle lipgloss.Style
	percentStyle  lipgloss.Style
}

// NewRenderer returns a renderer for out. With noColor set, or when out is
// not a colour terminal, output is plain text.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	lr := lipgloss.NewRenderer(out)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:     out,
		printer: message.NewPrinter(language.English),

		headerStyle:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		handStyle:     lr.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		winStyle:      lr.NewStyle().Foreground(lipgloss.Color("10")),
		mutedStyle:    lr.NewStyle().Foreground(lipgloss.Color("8")),
		categoryStyle: lr.NewStyle().Foreground(lipgloss.Color("12")),
		percentStyle:  lr.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Count formats n with thousands separators.
func (r *Renderer) Count(n uint64) string {
	return r.printer.Sprintf("%d", n)
}

// Outcome prints a sampled trial with the run's percent complete.
func (r *Renderer) Outcome(o simulator.TrialOutcome) {
	pct := 100 * float64(o.Trial) / float64(o.Total)
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.mutedStyle.Render(fmt.Sprintf("[%6.2f%%]", pct)),
		r.handStyle.Render(poker.FormatCards(o.Table.Community)),
		Headline(o.Winners, o.Ranking))
}

// Showdown prints each player's hand and the result.
func (r *Renderer) Showdown(table poker.Table, players []poker.Player, winners []int) error {
	fmt.Fprintf(r.out, "%s %s\n\n", r.headerStyle.Render("board"), r.handStyle.Render(poker.FormatCards(table.Community)))

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		r.headerStyle.Render("player"),
		r.headerStyle.Render("hole"),
		r.headerStyle.Render("hand"),
		r.headerStyle.Render("result"))
	for i, p := range players {
		if !p.Evaluated() {
			return fmt.Errorf("%w: player %d", poker.ErrUnevaluatedPlayer, i)
		}
		result := ""
		for _, winner := range winners {
			if winner == i {
				result = r.winStyle.Render("win")
				if len(winners) > 1 {
					result = r.percentStyle.Render("split")
				}
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i,
			r.handStyle.Render(poker.FormatCards(p.Hole[:])),
			r.categoryStyle.Render(Describe(*p.Ranking)),
			result)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(winners) > 0 {
		fmt.Fprintf(r.out, "\n%s\n", Headline(winners, *players[winners[0]].Ranking))
	}
	return nil
}

// Ranking prints a single evaluated card set.
func (r *Renderer) Ranking(cards []poker.Card, ranking poker.HandRanking) {
	fmt.Fprintf(r.out, "%s  %s  %s\n",
		r.handStyle.Render(poker.FormatCards(cards)),
		r.categoryStyle.Render(ranking.Category.String()),
		Describe(ranking))
}

// Summary prints the run header, win-type distribution, tier table and the
// top starting hands. top <= 0 prints all of them.
func (r *Renderer) Summary(s Summary, top int) error {
	fmt.Fprintf(r.out, "%s %s trials, %d players, %d workers in %s (seed %d, run %s)\n\n",
		r.headerStyle.Render("simulated"),
		r.Count(s.Trials), s.Players, s.Workers, s.Elapsed, s.Seed, s.RunID)

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		r.headerStyle.Render("win type"),
		r.headerStyle.Render("count"),
		r.headerStyle.Render("share"))
	for _, row := range s.WinTypes {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			r.categoryStyle.Render(row.Name),
			r.Count(row.Count),
			r.percentStyle.Render(row.Rate()))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(r.out)

	w = tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		r.headerStyle.Render("tier"),
		r.headerStyle.Render("hands"),
		r.headerStyle.Render("seen"),
		r.headerStyle.Render("win"))
	for _, row := range s.Tiers {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			r.categoryStyle.Render(string(row.Tier)),
			row.Hands,
			r.Count(row.Appearances),
			r.winStyle.Render(row.Rate()))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(r.out)

	hands := s.StartingHands
	if top > 0 && top < len(hands) {
		hands = hands[:top]
	}
	w = tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		r.headerStyle.Render("#"),
		r.headerStyle.Render("hand"),
		r.headerStyle.Render("tier"),
		r.headerStyle.Render("seen"),
		r.headerStyle.Render("win"),
		r.headerStyle.Render("95% ci"))
	for i, row := range hands {
		interval := r.mutedStyle.Render("-")
		if row.HasData {
			interval = r.mutedStyle.Render(fmt.Sprintf("%.1f-%.1f", 100*row.Low, 100*row.High))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			r.handStyle.Render(row.Key),
			string(row.Tier),
			r.Count(row.Appearances),
			r.winStyle.Render(row.Rate()),
			interval)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if omitted := len(s.StartingHands) - len(hands); omitted > 0 {
		fmt.Fprintf(r.out, "%s\n", r.mutedStyle.Render(fmt.Sprintf("... %d more", omitted)))
	}
	return nil
}
