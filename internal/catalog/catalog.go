package catalog

import "sort"

// Pace controls how densely a day is scheduled.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PaceIntense  Pace = "intense"
)

// Dietary selects which food list a day draws from.
type Dietary string

const (
	DietAnything   Dietary = "anything"
	DietHalal      Dietary = "halal"
	DietVegetarian Dietary = "vegetarian"
	DietSpicy      Dietary = "spicy"
)

// Tier is the accommodation quality bucket.
type Tier string

const (
	TierBudget  Tier = "budget"
	TierComfort Tier = "comfort"
	TierLuxury  Tier = "luxury"
)

type Attraction struct {
	Name         string  `json:"name"`
	LocalName    string  `json:"local_name"`
	Duration     string  `json:"duration"`
	TicketRMB    float64 `json:"ticket_rmb"`
	Address      string  `json:"address"`
	OpeningHours string  `json:"opening_hours"`
	Tips         string  `json:"tips,omitempty"`
}

type FoodOption struct {
	Name      string  `json:"name"`
	LocalName string  `json:"local_name"`
	Venue     string  `json:"venue"`
	PriceRMB  float64 `json:"price_rmb"`
}

type HotelOption struct {
	Name          string  `json:"name"`
	LocalName     string  `json:"local_name"`
	Tier          Tier    `json:"tier"`
	PricePerNight float64 `json:"price_per_night_rmb"`
	Address       string  `json:"address"`
}

type TransportLeg struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Mode     string  `json:"mode"`
	Duration string  `json:"duration"`
	PriceRMB float64 `json:"price_rmb"`
}

type EmergencyInfo struct {
	Police         string `json:"police"`
	Ambulance      string `json:"ambulance"`
	TouristHotline string `json:"tourist_hotline"`
	Hospital       string `json:"hospital"`
}

// CityEntry is one city's static content. The catalog is versioned data shipped
// with the binary; the engine never mutates it.
type CityEntry struct {
	ID              string
	Name            string
	LocalName       string
	Image           string
	RecommendedDays int
	Attractions     []Attraction
	Food            map[Dietary][]FoodOption
	Hotels          map[Tier]HotelOption
	// Transport is keyed "<originCityID>/<mode-slug>". A city may register
	// several inbound routes from the same origin.
	Transport map[string]TransportLeg
	Emergency EmergencyInfo
}

// FoodFor returns the food list for pref, falling back to the "anything" list
// when the preference list is empty or missing.
func (e CityEntry) FoodFor(pref Dietary) []FoodOption {
	if opts := e.Food[pref]; len(opts) > 0 {
		return opts
	}
	return e.Food[DietAnything]
}

// RouteFrom returns the first registered inbound route from the given origin
// city. "First" is the lexicographically smallest route key, so the choice is
// stable across runs; it is not cost- or duration-optimized.
func (e CityEntry) RouteFrom(originID string) (TransportLeg, bool) {
	prefix := originID + "/"
	var keys []string
	for k := range e.Transport {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return TransportLeg{}, false
	}
	sort.Strings(keys)
	return e.Transport[keys[0]], true
}

// Catalog is a read-only lookup over the city dataset.
type Catalog struct {
	cities map[string]CityEntry
	order  []string
}

func New(entries []CityEntry) *Catalog {
	c := &Catalog{cities: make(map[string]CityEntry, len(entries))}
	for _, e := range entries {
		if _, dup := c.cities[e.ID]; dup {
			continue
		}
		c.cities[e.ID] = e
		c.order = append(c.order, e.ID)
	}
	return c
}

// City looks up a city by id. The second return distinguishes a genuine miss
// from a zero entry so callers can report skipped cities instead of absorbing
// them silently.
func (c *Catalog) City(id string) (CityEntry, bool) {
	e, ok := c.cities[id]
	return e, ok
}

// Cities returns all entries in dataset order.
func (c *Catalog) Cities() []CityEntry {
	out := make([]CityEntry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.cities[id])
	}
	return out
}

// Attraction resolves a selected-place index for a city.
func (c *Catalog) Attraction(cityID string, index int) (Attraction, bool) {
	e, ok := c.cities[cityID]
	if !ok || index < 0 || index >= len(e.Attractions) {
		return Attraction{}, false
	}
	return e.Attractions[index], true
}
