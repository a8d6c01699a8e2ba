package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedItems returns the catalog used when no catalog was ever saved. The
// ledger starts empty: seeded stock is the opening balance, not a movement.
func SeedItems() []StockItem {
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return []StockItem{
		{
			ID: "seed-1", Company: Samsung, Category: TV, Name: "Crystal 4K UHD",
			Specs: Specs{SpecScreenSize: `43"`}, Price: price(32990), Stock: 8,
			Description: "Crisp 4K picture with PurColor and a slim bezel-less design.",
		},
		{
			ID: "seed-2", Company: Sony, Category: TV, Name: "Bravia X75L",
			Specs: Specs{SpecScreenSize: `55"`}, Price: price(61990), Stock: 3,
			Description: "Google TV with 4K HDR Processor X1 and Dolby Audio.",
		},
		{
			ID: "seed-3", Company: LG, Category: Fridge, Name: "Frost Free Double Door",
			Specs: Specs{SpecCapacity: "253 L"}, Price: price(26490), Stock: 5,
			Description: "Smart Inverter compressor with multi air flow cooling.",
		},
		{
			ID: "seed-4", Company: Whirlpool, Category: WashingMachine, Name: "Ace Supreme",
			Specs: Specs{SpecType: "Semi-Automatic", SpecCapacity: "7 Kg"}, Price: price(11990), Stock: 6,
			Description: "Twin tub washer with built-in scrubber and soak technology.",
		},
		{
			ID: "seed-5", Company: Voltas, Category: AC, Name: "Vectra Elite Inverter Split",
			Specs: Specs{SpecTonnage: "1.5 Ton"}, Price: price(38990), Stock: 4,
			Description: "5 star inverter split AC with copper condenser.",
		},
		{
			ID: "seed-6", Company: Daikin, Category: AC, Name: "FTKM Inverter Split",
			Specs: Specs{SpecTonnage: "1.0 Ton"}, Price: price(35490), Stock: 2,
			Description: "Coanda airflow and PM 2.5 filter for efficient cooling.",
		},
		{
			ID: "seed-7", Company: Luminous, Category: Inverter, Name: "Zelio+ 1100",
			Specs: Specs{SpecCapacity: "1100 VA"}, Price: price(8490), Stock: 7,
			Description: "Pure sine wave home UPS with LCD display.",
		},
		{
			ID: "seed-8", Company: Luminous, Category: Battery, Name: "Red Charge RC 18000",
			Specs: Specs{SpecCapacity: "150 Ah"}, Price: price(13990), Stock: 9,
			Description: "Tall tubular inverter battery with low maintenance.",
		},
		{
			ID: "seed-9", Company: Kent, Category: WaterFilter, Name: "Grand Plus RO",
			Price: price(16500), Stock: 4,
			Description: "RO + UV + UF purification with TDS controller.",
		},
		{
			ID: "seed-10", Company: Bajaj, Category: JuicerMixer, Name: "Rex 500W",
			Price: price(2499), Stock: 12,
			Description: "Three jar mixer grinder with multi-functional blade system.",
		},
	}
}

// seedCatalog stamps the seed items with time at.
func seedCatalog(at time.Time) []StockItem {
	items := SeedItems()
	for i := range items {
		items[i].LastUpdated = at
	}
	return items
}
