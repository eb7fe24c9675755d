package normalize

import "github.com/galnet-relay/relay/internal/galnet"

// Market builds the Market record and its traded Commodities.
func Market(env galnet.Envelope, e galnet.EventMarket) galnet.Bundle {
	commodities := make([]galnet.MarketCommodity, 0, len(e.Commodities))
	for _, c := range e.Commodities {
		commodities = append(commodities, galnet.MarketCommodity{
			MarketID:  e.MarketID,
			Name:      c.Name,
			Category:  c.Category,
			Stock:     c.Stock,
			Demand:    c.Demand,
			Supply:    c.Supply,
			BuyPrice:  c.BuyPrice,
			SellPrice: c.SellPrice,
		})
	}

	market := galnet.Market{
		MarketID:    e.MarketID,
		Timestamp:   e.Timestamp,
		Commodities: commodities,
	}

	return galnet.Bundle{Markets: []galnet.Market{market}}
}
