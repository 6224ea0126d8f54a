package linecount

import (
	"fmt"
	"io"
	"time"

	"line-counter/core/lines"

	jsoniter "github.com/json-iterator/go"
)

const banner = "=========================================="

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is the outcome of a successful run.
type Report struct {
	Location string `json:"location"`
	lines.Result
	Duration       time.Duration `json:"-"`
	DurationMillis int64         `json:"duration_ms"`
}

func newReport(location string, res lines.Result, elapsed time.Duration) Report {
	return Report{
		Location:       location,
		Result:         res,
		Duration:       elapsed,
		DurationMillis: elapsed.Milliseconds(),
	}
}

// Reporter publishes a Report to an output channel.
type Reporter interface {
	Report(rep Report) error
}

// BannerReporter writes the line count framed by banner lines.
type BannerReporter struct {
	Out io.Writer
}

func (b BannerReporter) Report(rep Report) error {
	_, err := fmt.Fprintf(b.Out, "%s\nLine count: %d\n%s\n", banner, rep.Lines, banner)
	return err
}

// JSONReporter writes the report as one JSON document.
type JSONReporter struct {
	Out io.Writer
}

func (j JSONReporter) Report(rep Report) error {
	return json.NewEncoder(j.Out).Encode(rep)
}
