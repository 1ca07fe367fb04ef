package territory

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-datagen/pkg/rng"
)

var letters = strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")

var registryOrder = []string{"australia", "india", "united-kingdom", "united-states"}

var registry = map[string]Territory{
	"australia": {
		Key:      "australia",
		Label:    "Australia",
		Currency: "AUD",
		StreetNames: []string{
			"George St", "Collins St", "Queen St", "Elizabeth St",
			"Bourke St", "Pitt St", "Swanston St", "Spring St",
			"Bridge Rd", "Oxford St", "Flinders St", "Lygon St",
		},
		States: []State{
			{
				Key:          "nsw",
				Name:         "New South Wales",
				Cities:       []string{"Sydney", "Newcastle", "Wollongong"},
				PostalPrefix: "2",
				AreaCodes:    []string{"02"},
			},
			{
				Key:          "vic",
				Name:         "Victoria",
				Cities:       []string{"Melbourne", "Geelong", "Ballarat"},
				PostalPrefix: "3",
				AreaCodes:    []string{"03"},
			},
			{
				Key:          "qld",
				Name:         "Queensland",
				Cities:       []string{"Brisbane", "Gold Coast", "Cairns"},
				PostalPrefix: "4",
				AreaCodes:    []string{"07"},
			},
			{
				Key:          "wa",
				Name:         "Western Australia",
				Cities:       []string{"Perth", "Fremantle", "Bunbury"},
				PostalPrefix: "6",
				AreaCodes:    []string{"08"},
			},
		},
		Mobile: func(src *rng.Source, _ State) string {
			return fmt.Sprintf("04%d", src.IntBetween(10000000, 99999999))
		},
		Landline: func(src *rng.Source, state State) string {
			area := pickAreaCode(src, state, []string{"02", "03", "07", "08"})
			return fmt.Sprintf("%s %d %d", area, src.IntBetween(200, 999), src.IntBetween(100000, 999999))
		},
		PostalCode: func(src *rng.Source, state State) string {
			return fmt.Sprintf("%s%03d", state.PostalPrefix, src.IntBetween(0, 999))
		},
	},
	"india": {
		Key:      "india",
		Label:    "India",
		Currency: "INR",
		StreetNames: []string{
			"MG Road", "Brigade Road", "Cambridge Layout", "Ring Road",
			"Indiranagar Main Rd", "Bandra Kurla Complex", "Linking Road",
			"Park Street", "Anna Salai", "FC Road",
		},
		States: []State{
			{
				Key:          "karnataka",
				Name:         "Karnataka",
				Cities:       []string{"Bengaluru", "Mysuru", "Mangaluru"},
				PostalPrefix: "56",
			},
			{
				Key:          "maharashtra",
				Name:         "Maharashtra",
				Cities:       []string{"Mumbai", "Pune", "Nagpur"},
				PostalPrefix: "40",
			},
			{
				Key:          "delhi",
				Name:         "Delhi",
				Cities:       []string{"New Delhi", "Dwarka", "Rohini"},
				PostalPrefix: "11",
			},
			{
				Key:          "tamil-nadu",
				Name:         "Tamil Nadu",
				Cities:       []string{"Chennai", "Coimbatore", "Madurai"},
				PostalPrefix: "60",
			},
		},
		Mobile: func(src *rng.Source, _ State) string {
			prefix := rng.Pick(src, []string{"9", "8", "7"})
			return fmt.Sprintf("+91 %s%d", prefix, src.IntBetween(100000000, 999999999))
		},
		Landline: func(src *rng.Source, _ State) string {
			return fmt.Sprintf("0%d-%d", src.IntBetween(1111, 8899), src.IntBetween(100000, 999999))
		},
		PostalCode: func(src *rng.Source, state State) string {
			return fmt.Sprintf("%s%04d", state.PostalPrefix, src.IntBetween(0, 9999))
		},
	},
	"united-kingdom": {
		Key:      "united-kingdom",
		Label:    "United Kingdom",
		Currency: "GBP",
		StreetNames: []string{
			"Baker St", "King's Rd", "Oxford St", "Piccadilly", "Fleet St",
			"Portobello Rd", "George St", "High St", "Queen's Rd", "Station Rd",
		},
		States: []State{
			{
				Key:          "england",
				Name:         "England",
				Cities:       []string{"London", "Manchester", "Bristol"},
				PostalPrefix: "SW1",
			},
			{
				Key:          "scotland",
				Name:         "Scotland",
				Cities:       []string{"Edinburgh", "Glasgow", "Aberdeen"},
				PostalPrefix: "EH3",
			},
			{
				Key:          "wales",
				Name:         "Wales",
				Cities:       []string{"Cardiff", "Swansea", "Newport"},
				PostalPrefix: "CF1",
			},
			{
				Key:          "northern-ireland",
				Name:         "Northern Ireland",
				Cities:       []string{"Belfast", "Derry", "Lisburn"},
				PostalPrefix: "BT1",
			},
		},
		Mobile: func(src *rng.Source, _ State) string {
			return fmt.Sprintf("+44 7%d", src.IntBetween(100000000, 999999999))
		},
		Landline: func(src *rng.Source, _ State) string {
			return fmt.Sprintf("0%d %d %d", src.IntBetween(113, 204), src.IntBetween(1000, 9999), src.IntBetween(1000, 9999))
		},
		PostalCode: func(src *rng.Source, state State) string {
			return fmt.Sprintf("%s%d %d%s%s",
				state.PostalPrefix,
				src.IntBetween(1, 9),
				src.IntBetween(0, 9),
				rng.Pick(src, letters),
				rng.Pick(src, letters),
			)
		},
	},
	"united-states": {
		Key:      "united-states",
		Label:    "United States",
		Currency: "USD",
		StreetNames: []string{
			"Main St", "Broadway", "Elm St", "Maple Ave", "Pine St",
			"Cedar Ave", "Market St", "2nd Ave", "Park Ave", "Sunset Blvd",
		},
		States: []State{
			{
				Key:          "california",
				Name:         "California",
				Cities:       []string{"San Francisco", "Los Angeles", "San Diego"},
				PostalPrefix: "90",
				AreaCodes:    []string{"415", "310", "619"},
			},
			{
				Key:          "new-york",
				Name:         "New York",
				Cities:       []string{"New York", "Buffalo", "Rochester"},
				PostalPrefix: "10",
				AreaCodes:    []string{"212", "347", "718"},
			},
			{
				Key:          "texas",
				Name:         "Texas",
				Cities:       []string{"Houston", "Austin", "Dallas"},
				PostalPrefix: "75",
				AreaCodes:    []string{"713", "512", "214"},
			},
			{
				Key:          "washington",
				Name:         "Washington",
				Cities:       []string{"Seattle", "Spokane", "Tacoma"},
				PostalPrefix: "98",
				AreaCodes:    []string{"206", "509", "253"},
			},
		},
		Mobile: func(src *rng.Source, state State) string {
			area := pickAreaCode(src, state, []string{"206", "310", "415", "512", "718"})
			return fmt.Sprintf("+1-%s-%d-%d", area, src.IntBetween(200, 999), src.IntBetween(1000, 9999))
		},
		Landline: func(src *rng.Source, state State) string {
			area := pickAreaCode(src, state, []string{"206", "310", "415", "512", "718"})
			return fmt.Sprintf("%s-%d-%d", area, src.IntBetween(200, 999), src.IntBetween(1000, 9999))
		},
		PostalCode: func(src *rng.Source, state State) string {
			return fmt.Sprintf("%s%03d", state.PostalPrefix, src.IntBetween(0, 999))
		},
	},
}

func pickAreaCode(src *rng.Source, state State, fallback []string) string {
	if len(state.AreaCodes) > 0 {
		return rng.Pick(src, state.AreaCodes)
	}
	return rng.Pick(src, fallback)
}
