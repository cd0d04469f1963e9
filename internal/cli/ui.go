//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/utilkit/internal/format"
	"github.com/agbru/utilkit/internal/orchestration"
)

// FormatExecutionDuration formats a duration for display. See
// format.FormatExecutionDuration.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 20
)

// Spinner abstracts a terminal spinner so that DisplayProgress can be tested
// without a real terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressSuffix renders the text shown after the spinner.
func progressSuffix(tracker *orchestration.ProgressTracker) string {
	return fmt.Sprintf(" %s %s", format.ProgressBar(tracker.Fraction(), ProgressBarWidth), tracker.Summary())
}

// DisplayProgress shows a spinner with a completion bar until progressChan is
// closed. It must be run in its own goroutine and calls wg.Done on return.
//
// Parameters:
//   - wg: The WaitGroup to signal on completion.
//   - progressChan: Receives one update per finished calculator.
//   - numCalculators: The number of calculators being run.
//   - out: The writer the spinner draws on.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()

	tracker := orchestration.NewProgressTracker(numCalculators)
	if tracker == nil {
		for range progressChan {
		}
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(tracker))
	s.Start()
	defer s.Stop()

	for update := range progressChan {
		tracker.Update(update)
		s.UpdateSuffix(progressSuffix(tracker))
	}
}
