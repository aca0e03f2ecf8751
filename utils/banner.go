package utils

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	spinnerMu sync.Mutex
	spin      *spinner.Spinner
)

func DrawBanner() {
	banner := figure.NewColorFigure("IPAM Doctor", "", "cyan", true)
	banner.Print()
	fmt.Println(text.FgHiBlue.Sprint(" Subnet utilization across every subscribed region"))
	fmt.Println()
}

// StartSpinner shows a progress spinner on stderr until StopSpinner is called
func StartSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if spin != nil {
		return
	}

	spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	spin.Suffix = " Collecting subnet utilization statistics..."
	spin.Start()
}

// StopSpinner stops the spinner. It is safe to call when none is running.
func StopSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if spin == nil {
		return
	}

	spin.Stop()
	spin = nil
}
