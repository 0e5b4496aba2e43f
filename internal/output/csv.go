package output

import (
	"encoding/csv"
	"os"
	"strconv"

	"bufferstock/internal/simulate"
	"bufferstock/internal/solve"
)

// WritePolicyCSV tabulates a consumption policy on [mMin, mMax] and writes
// (m, c, mpc) rows. This is the toolkit's stand-in for a plotting surface.
func WritePolicyCSV(path string, sol *solve.Solution, mMin, mMax float64, points int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"m_nrm", "c_nrm", "mpc"}); err != nil {
		return err
	}
	ms, cs := sol.Tabulate(mMin, mMax, points)
	for i := range ms {
		row := []string{
			fmtFloat(ms[i]),
			fmtFloat(cs[i]),
			fmtFloat(sol.MPC(ms[i])),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WritePanelCSV writes one row per agent per simulated period.
func WritePanelCSV(path string, panel []simulate.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"period",
		"agent",
		"age",
		"m_nrm",
		"c_nrm",
		"a_nrm",
		"p_lvl",
		"a_lvl",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range panel {
		row := []string{
			strconv.Itoa(r.Period),
			strconv.Itoa(r.Agent),
			strconv.Itoa(r.Age),
			fmtFloat(r.MNrm),
			fmtFloat(r.CNrm),
			fmtFloat(r.ANrm),
			fmtFloat(r.PLvl),
			fmtFloat(r.ALvl),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteLorenzCSV writes percentile/simulated/target triplets; target columns
// may be empty when no targets are supplied.
func WriteLorenzCSV(path string, percentiles, simulated, targets []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"percentile", "simulated_share", "target_share"}); err != nil {
		return err
	}
	for i := range percentiles {
		target := ""
		if i < len(targets) {
			target = fmtFloat(targets[i])
		}
		row := []string{fmtFloat(percentiles[i]), fmtFloat(simulated[i]), target}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
