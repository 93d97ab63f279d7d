package types

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/joefarrington/or-gym/util"
)

// EpisodeReturn records the total reward collected in each episode
func EpisodeReturn() Analyzer {
	return func(i int, s string, t []*Trace) DataSet {
		returns := make([]int, len(t))
		for j, trace := range t {
			returns[j] = trace.TotalReward()
		}
		return returns
	}
}

// EpisodeReturnPlotter plots the per-episode returns of each
// experiment and appends a per-run summary line to return_summary.txt
// under the plot path
func EpisodeReturnPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, s []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Return"
		for i := 0; i < len(s); i++ {
			returns := ds[i].([]int)
			points := make(plotter.XYs, len(returns))
			for j, v := range returns {
				points[j] = plotter.XY{
					X: float64(j),
					Y: float64(v),
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(s[i], line)
			best := 0
			for _, v := range returns {
				if v > best {
					best = v
				}
			}
			fmt.Printf("Best return: %d for experiment: %s\n", best, s[i])
			util.AppendToFile(
				path.Join(plotPath, "return_summary.txt"),
				fmt.Sprintf("run %d, experiment %s, best return %d", run, s[i], best),
			)
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_episode_return.png"))
	}
}

// ObservationCoverage counts the cumulative number of unique
// observations seen across the episodes
func ObservationCoverage() Analyzer {
	return func(i int, s string, t []*Trace) DataSet {
		uniqueObs := make(map[string]bool)
		numUniqueObs := make([]int, 0)
		for _, trace := range t {
			for j := 0; j < trace.Len(); j++ {
				o, _, _, _, _ := trace.Get(j)
				oHash := o.Hash()
				if _, ok := uniqueObs[oHash]; !ok {
					uniqueObs[oHash] = true
				}
			}
			numUniqueObs = append(numUniqueObs, len(uniqueObs))
		}
		return numUniqueObs
	}
}

// ObservationCoveragePlotter plots the coverage curves of each experiment
func ObservationCoveragePlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, s []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Observations covered"
		for i := 0; i < len(s); i++ {
			uniqueObs := ds[i].([]int)
			points := make(plotter.XYs, len(uniqueObs))
			for j, v := range uniqueObs {
				points[j] = plotter.XY{
					X: float64(j),
					Y: float64(v),
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(s[i], line)
			fmt.Printf("Number of unique observations: %d for experiment: %s\n", uniqueObs[len(uniqueObs)-1], s[i])
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_obs_coverage.png"))
	}
}
