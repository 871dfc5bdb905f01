package util

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond
)

// RunWithSpinner runs work showing a spinner with the prefix text until it returns.
// The spinner is only drawn when stdout is a terminal.
func RunWithSpinner(prefix string, work func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return work()
	}

	indicator := spinner.New(spinnerPicture, spinnerUpdateTime)
	indicator.Prefix = prefix + " "
	indicator.Start()
	defer indicator.Stop()

	return work()
}
