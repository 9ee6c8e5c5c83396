package main

import (
	"strconv"
	"strings"

	"github.com/luca-patrignani/wildcard-poker/domain/poker"
	"github.com/luca-patrignani/wildcard-poker/ledger"
	"github.com/pterm/pterm"
)

func renderCard(c poker.Card) string {
	short := c.Display(poker.Short)
	if c.IsJoker() {
		if c.Color() == poker.Red {
			return pterm.LightRed(short)
		}
		return pterm.Black(short)
	}
	if c.Suit().IsRed() {
		return pterm.LightRed(short)
	}
	return pterm.Black(short)
}

func renderHand(hand []poker.Card) string {
	cards := make([]string, len(hand))
	for i, c := range hand {
		cards[i] = renderCard(c)
	}
	return strings.Join(cards, " - ")
}

func getHandPanel(title string, res drawResult) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("%s", pterm.BgGreen.Sprint(" "+renderHand(res.Hand)+" "))
	info += pterm.Sprintfln("%s", pterm.LightCyan(res.Classification.Label))
	if res.Detail != "" {
		info += pterm.Sprintfln("Detail: %s", res.Detail)
	}
	info += pterm.Sprintf("Cards left: %d", res.Remaining)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen(title)).WithTitleTopCenter().Sprint(info)}
}

func printResult(title string, res drawResult) {
	if res.Reshuffled {
		pterm.Warning.Println("Deck ran out, discards were shuffled back in.")
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getHandPanel(title, res)}}).Render()
}

func printHistory(h *ledger.History) {
	draws := h.Draws()
	if len(draws) == 0 {
		pterm.Info.Println("No hands drawn yet.")
		return
	}
	data := pterm.TableData{{"#", "Hand", "Classification", "Left", "Reshuffled"}}
	for _, b := range draws {
		reshuffled := ""
		if b.Metadata.Reshuffled {
			reshuffled = "yes"
		}
		data = append(data, []string{
			strconv.Itoa(b.Index),
			strings.Join(b.Hand, " "),
			b.Classification,
			strconv.Itoa(b.Metadata.Remaining),
			reshuffled,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if err := h.Verify(); err != nil {
		pterm.Error.Printfln("History verification failed: %s", err.Error())
		return
	}
	pterm.Success.Printfln("History of %d draws verified", len(draws))
}

func printHelp() {
	pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "<n>            draw n cards and classify them"},
		{Level: 0, Text: "eval <cards>   classify your own cards, e.g. eval 10S JS QS KS Jk(R)"},
		{Level: 0, Text: "shuffle        return discards and shuffle"},
		{Level: 0, Text: "history        list and verify this session's draws"},
		{Level: 0, Text: "quit           leave"},
	}).Render()
}
