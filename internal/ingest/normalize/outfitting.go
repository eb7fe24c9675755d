package normalize

import "github.com/galnet-relay/relay/internal/galnet"

// Outfitting builds the Outfitting record and its available Items.
func Outfitting(env galnet.Envelope, e galnet.EventOutfitting) galnet.Bundle {
	items := make([]galnet.OutfittingItem, 0, len(e.Modules))
	for _, name := range e.Modules {
		items = append(items, galnet.OutfittingItem{MarketID: e.MarketID, Name: name})
	}

	outfitting := galnet.Outfitting{
		MarketID:  e.MarketID,
		Timestamp: e.Timestamp,
		Items:     items,
	}

	return galnet.Bundle{Outfittings: []galnet.Outfitting{outfitting}}
}
