package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/usersconsole/internal/client/metrics"
	"github.com/dmitrijs2005/usersconsole/internal/client/models"
)

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	faintColor   = color.New(color.Faint)
)

// renderDirectory prints the visible entries of st as a table followed by
// the pagination line, the search summary and the error, if any.
// Provisional ids are marked with "*".
func renderDirectory(w io.Writer, st models.DirectoryState) {
	visible := st.Visible()

	if len(visible) == 0 {
		faintColor.Fprintln(w, "(no entries)")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tAVATAR")
		for _, e := range visible {
			id := e.ID
			if e.Provisional {
				id += "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, e.FullName(), e.Email, e.AvatarURL)
		}
		_ = tw.Flush()
	}

	fmt.Fprintln(w, pageSummary(st))
	if strings.TrimSpace(st.SearchQuery) != "" {
		fmt.Fprintf(w, "search %q: %d of %d shown\n", st.SearchQuery, len(visible), len(st.Entries))
	}
	if st.Error != "" {
		errorColor.Fprintf(w, "error: %s\n", st.Error)
	}
}

// pageSummary is "page 2/3, total 25"; an estimated total reads "~25".
func pageSummary(st models.DirectoryState) string {
	total := strconv.Itoa(st.Total)
	if st.TotalEstimated {
		total = "~" + total
	}
	summary := fmt.Sprintf("page %d/%d, total %s", st.CurrentPage, st.TotalPages(), total)
	if st.Loading {
		summary += " (loading)"
	}
	return summary
}

func renderProfile(w io.Writer, p *models.Profile) {
	if p == nil {
		fmt.Fprintln(w, "Not logged in")
		return
	}
	fmt.Fprintf(w, "%s <%s> (id %s)\n", p.DisplayName, p.Email, p.ID)
}

// renderStats prints one row per remote operation called so far.
func renderStats(w io.Writer, stats []metrics.OpStat) {
	if len(stats) == 0 {
		faintColor.Fprintln(w, "(no remote calls yet)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE\tOP\tOK\tERRORS\tAVG")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.0fms\n", s.Service, s.Op, s.OK, s.Errors, s.AvgSeconds*1000)
	}
	_ = tw.Flush()
}
