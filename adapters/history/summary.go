package history

import (
	"github.com/montanaflynn/stats"
)

// Summary aggregates the retained calculations for display
type Summary struct {
	Count       int     `json:"count"`
	MeanInput   float64 `json:"mean_input"`
	MedianInput float64 `json:"median_input"`
	MinInput    float64 `json:"min_input"`
	MaxInput    float64 `json:"max_input"`
	MeanPDF     float64 `json:"mean_pdf"`
	MeanCDF     float64 `json:"mean_cdf"`
}

// Summarize computes summary statistics over the recorder's entries
func (r *MemoryRecorder) Summarize() (Summary, error) {
	entries := r.Entries()
	summary := Summary{Count: len(entries)}
	if len(entries) == 0 {
		return summary, nil
	}

	inputs := make([]float64, 0, len(entries))
	pdfs := make([]float64, 0, len(entries))
	cdfs := make([]float64, 0, len(entries))
	for _, e := range entries {
		inputs = append(inputs, e.InputValue)
		pdfs = append(pdfs, e.PDF)
		cdfs = append(cdfs, e.CDF)
	}

	var err error
	if summary.MeanInput, err = stats.Mean(inputs); err != nil {
		return summary, err
	}
	if summary.MedianInput, err = stats.Median(inputs); err != nil {
		return summary, err
	}
	if summary.MinInput, err = stats.Min(inputs); err != nil {
		return summary, err
	}
	if summary.MaxInput, err = stats.Max(inputs); err != nil {
		return summary, err
	}
	if summary.MeanPDF, err = stats.Mean(pdfs); err != nil {
		return summary, err
	}
	if summary.MeanCDF, err = stats.Mean(cdfs); err != nil {
		return summary, err
	}

	return summary, nil
}
