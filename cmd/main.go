package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/hash-ledger/ledger"
)

// step is the outcome of one stage of the demo.
type step struct {
	Title string
	Len   int
	Err   error
}

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [sha256|blake2b|<kyber suite>]\n", os.Args[0])
		os.Exit(1)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	digest := ""
	if len(os.Args) == 2 {
		digest = os.Args[1]
	}
	fingerprints, err := ledger.FingerprinterByName(digest)
	if err != nil {
		logger.Error("invalid digest", "digest", digest, "error", err.Error())
		os.Exit(1)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Hash", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Ledger", pterm.FgDarkGray.ToStyle()),
	).Render()

	bc := ledger.NewBlockchain(
		ledger.WithFingerprinter(fingerprints),
		ledger.WithLogger(logger),
	)
	pterm.Info.Printfln("Chain %s using %s", bc.ID(), fingerprints.Name())

	steps, err := runDemo(bc, time.Now)
	if err != nil {
		logger.Error("demo failed", "error", err.Error())
		os.Exit(1)
	}
	for _, s := range steps {
		printStep(s)
	}
	printChain(bc)
}

// runDemo appends two transfers to bc, then tampers with the latest block,
// recording the validity of the chain after each stage.
func runDemo(bc *ledger.Blockchain, now func() time.Time) ([]step, error) {
	steps := []step{{Title: "Genesis", Len: bc.Len(), Err: bc.Verify()}}

	transfers := []ledger.Payload{
		{Amount: 2, SenderKey: "Ronaldo", ReceiverKey: "Messi"},
		{Amount: 0.0768, SenderKey: "Rashy", ReceiverKey: "Bruno"},
	}
	for _, p := range transfers {
		p.Timestamp = now().Unix()
		bc.Append(p)
		steps = append(steps, step{
			Title: fmt.Sprintf("%s sends %g to %s", p.SenderKey, p.Amount, p.ReceiverKey),
			Len:   bc.Len(),
			Err:   bc.Verify(),
		})
	}

	err := ledger.ForceCorrupt(bc, bc.Len()-1, func(p *ledger.Payload) {
		p.Amount = 100
		p.ReceiverKey = "Suarez"
	})
	if err != nil {
		return nil, err
	}
	steps = append(steps, step{
		Title: "Latest block rewritten to send 100 to Suarez",
		Len:   bc.Len(),
		Err:   bc.Verify(),
	})
	return steps, nil
}
