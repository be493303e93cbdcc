package scraper

// Catalog describes one scrapeable component listing.
type Catalog struct {
	// Key is the stable identifier used on the command line and in the
	// persisted dataset prefix.
	Key string
	// Label is the human form used in logs and reports.
	Label string
	// URL is the entry page, price-sorted so the cheapest items come first.
	URL string
	// FilePrefix names persisted datasets for this catalog.
	FilePrefix string
}

var catalogs = []Catalog{
	{Key: "case", Label: "Case", URL: "https://fr.pcpartpicker.com/products/case/#sort=price&page=1", FilePrefix: "french_cases_precise"},
	{Key: "cpu", Label: "CPU", URL: "https://fr.pcpartpicker.com/products/cpu/#sort=price&page=1", FilePrefix: "french_cpus_precise"},
	{Key: "cpu_cooler", Label: "CPU Cooler", URL: "https://fr.pcpartpicker.com/products/cpu-cooler/#sort=price&page=1", FilePrefix: "french_cpu_coolers_precise"},
	{Key: "graphic_card", Label: "Graphic Card", URL: "https://fr.pcpartpicker.com/products/video-card/#sort=price&page=1", FilePrefix: "french_video_cards_precise"},
	{Key: "hard_drive", Label: "Hard Drive", URL: "https://fr.pcpartpicker.com/products/internal-hard-drive/#sort=price&page=1", FilePrefix: "french_internal_hard_drives_precise"},
	{Key: "memory", Label: "Memory", URL: "https://fr.pcpartpicker.com/products/memory/#sort=price&page=1", FilePrefix: "french_memory_precise"},
	{Key: "motherboard", Label: "Motherboard", URL: "https://fr.pcpartpicker.com/products/motherboard/#sort=price&page=1", FilePrefix: "french_motherboards_precise"},
	{Key: "power_supply", Label: "Power Supply", URL: "https://fr.pcpartpicker.com/products/power-supply/#sort=price&page=1", FilePrefix: "french_power_supplies_precise"},
}

// Catalogs returns every known catalog in stable order.
func Catalogs() []Catalog {
	out := make([]Catalog, len(catalogs))
	copy(out, catalogs)
	return out
}

// CatalogKeys returns the known catalog keys in stable order.
func CatalogKeys() []string {
	keys := make([]string, len(catalogs))
	for i, c := range catalogs {
		keys[i] = c.Key
	}
	return keys
}

// CatalogByKey looks a catalog up by its key.
func CatalogByKey(key string) (Catalog, bool) {
	for _, c := range catalogs {
		if c.Key == key {
			return c, true
		}
	}
	return Catalog{}, false
}
