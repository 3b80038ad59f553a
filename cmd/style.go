package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hash-ledger/ledger"
)

func printStep(s step) {
	if s.Err == nil {
		pterm.Success.Printfln("%s: chain of %d blocks is valid", s.Title, s.Len)
		return
	}
	pterm.Error.Printfln("%s: chain of %d blocks is invalid (%v)", s.Title, s.Len, s.Err)
}

func printChain(bc *ledger.Blockchain) {
	pterm.DefaultSection.Println("Blocks")
	pterm.DefaultTable.WithHasHeader().WithData(chainTable(bc.Blocks())).Render()
}

// chainTable lays out one row per block, header first.
func chainTable(blocks []ledger.Block) pterm.TableData {
	data := pterm.TableData{{"#", "Sender", "Receiver", "Amount", "Prev", "Hash", "Intact"}}
	for _, b := range blocks {
		p := b.Payload()
		intact := pterm.LightGreen("yes")
		if !b.IsIntegrityValid() {
			intact = pterm.LightRed("no")
		}
		data = append(data, []string{
			strconv.Itoa(b.Index()),
			p.SenderKey,
			p.ReceiverKey,
			strconv.FormatFloat(p.Amount, 'f', -1, 64),
			b.PreviousFingerprint().Short(),
			b.Fingerprint().Short(),
			intact,
		})
	}
	return data
}
