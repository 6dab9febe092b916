package seed

import "github.com/okian/hoodmatch/internal/domain/model"

// Samples returns a curated set of realistic neighborhoods across several
// US cities and price points. IDs are stable so repeated seeding is
// idempotent and history entries stay meaningful across restarts.
func Samples() []model.Neighborhood {
	return []model.Neighborhood{
		{
			ID:          "nyc-greenwich-village",
			Name:        "Greenwich Village",
			City:        "New York",
			State:       "NY",
			Coordinates: model.Coordinates{Lat: 40.7335, Lng: -74.0027},
			Demographics: model.Demographics{
				Population:     22785,
				MedianAge:      36,
				MedianIncome:   85000,
				EducationLevel: "Graduate Degree",
			},
			Lifestyle: model.Lifestyle{
				Walkability:  model.Float64Ptr(98),
				Transit:      model.Float64Ptr(95),
				Bike:         model.Float64Ptr(85),
				CrimeRate:    model.Float64Ptr(15),
				SchoolRating: model.Float64Ptr(8),
			},
			Amenities: model.Amenities{
				Restaurants: 150,
				Parks:       8,
				Gyms:        12,
				Shopping:    25,
				Nightlife:   45,
				Healthcare:  8,
			},
			Housing: model.Housing{
				MedianRent:      model.Float64Ptr(3500),
				MedianHomePrice: model.Float64Ptr(1200000),
				RentRange:       &model.PriceRange{Min: 2000, Max: 8000},
			},
			Description: "Historic neighborhood known for its bohemian culture, tree-lined streets, and vibrant arts scene. Home to Washington Square Park and NYU.",
			Tags:        []string{"urban", "walkable", "nightlife", "cultural", "expensive", "historic"},
		},
		{
			ID:          "nyc-lower-east-side",
			Name:        "Lower East Side",
			City:        "New York",
			State:       "NY",
			Coordinates: model.Coordinates{Lat: 40.7128, Lng: -73.9857},
			Demographics: model.Demographics{
				Population:     16500,
				MedianAge:      32,
				MedianIncome:   60000,
				EducationLevel: "Bachelor's Degree",
			},
			Lifestyle: model.Lifestyle{
				Walkability:  model.Float64Ptr(97),
				Transit:      model.Float64Ptr(90),
				Bike:         model.Float64Ptr(80),
				CrimeRate:    model.Float64Ptr(20),
				SchoolRating: model.Float64Ptr(7),
			},
			Amenities: model.Amenities{
				Restaurants: 120,
				Parks:       5,
				Gyms:        10,
				Shopping:    20,
				Nightlife:   35,
				Healthcare:  7,
			},
			Housing: model.Housing{
				MedianRent:      model.Float64Ptr(2800),
				MedianHomePrice: model.Float64Ptr(900000),
				RentRange:       &model.PriceRange{Min: 1500, Max: 6000},
			},
			Description: "Neighborhood known for its diverse immigrant population, historic tenements, and street art.",
			Tags:        []string{"urban", "walkable", "diverse", "historic", "affordable"},
		},
		{
			ID:          "sf-mission-district",
			Name:        "Mission District",
			City:        "San Francisco",
			State:       "CA",
			Coordinates: model.Coordinates{Lat: 37.7599, Lng: -122.4148},
			Demographics: model.Demographics{
				Population:     45000,
				MedianAge:      34,
				MedianIncome:   103000,
				EducationLevel: "Bachelor's Degree",
			},
			Lifestyle: model.Lifestyle{
				Walkability:  model.Float64Ptr(96),
				Transit:      model.Float64Ptr(85),
				Bike:         model.Float64Ptr(90),
				CrimeRate:    model.Float64Ptr(35),
				SchoolRating: model.Float64Ptr(6),
			},
			Amenities: model.Amenities{
				Restaurants: 180,
				Parks:       6,
				Gyms:        15,
				Shopping:    30,
				Nightlife:   40,
				Healthcare:  6,
			},
			Housing: model.Housing{
				MedianRent:      model.Float64Ptr(3200),
				MedianHomePrice: model.Float64Ptr(1400000),
				RentRange:       &model.PriceRange{Min: 1800, Max: 6500},
			},
			Description: "Sunny, mural-covered neighborhood famous for its Latin American food scene, Dolores Park, and a dense strip of bars and music venues.",
			Tags:        []string{"urban", "walkable", "nightlife", "food", "cultural"},
		},
		{
			ID:          "sea-capitol-hill",
			Name:        "Capitol Hill",
			City:        "Seattle",
			State:       "WA",
			Coordinates: model.Coordinates{Lat: 47.6253, Lng: -122.3222},
			Demographics: model.Demographics{
				Population:     30000,
				MedianAge:      31,
				MedianIncome:   72000,
				EducationLevel: "Bachelor's Degree",
			},
			Lifestyle: model.Lifestyle{
				Walkability:  model.Float64Ptr(93),
				Transit:      model.Float64Ptr(80),
				Bike:         model.Float64Ptr(75),
				CrimeRate:    model.Float64Ptr(40),
				SchoolRating: model.Float64Ptr(7),
			},
			Amenities: model.Amenities{
				Restaurants: 140,
				Parks:       7,
				Gyms:        11,
				Shopping:    22,
				Nightlife:   50,
				Healthcare:  5,
			},
			Housing: model.Housing{
				MedianRent:      model.Float64Ptr(2100),
				MedianHomePrice: model.Float64Ptr(750000),
				RentRange:       &model.PriceRange{Min: 1300, Max: 4500},
			},
			Description: "Seattle's nightlife and arts hub, dense with music venues, coffee shops, and Victorian mansions a short walk from downtown.",
			Tags:        []string{"urban", "walkable", "nightlife", "lgbtq-friendly", "coffee"},
		},
		{
			ID:          "chi-wicker-park",
			Name:        "Wicker Park",
			City:        "Chicago",
			State:       "IL",
			Coordinates: model.Coordinates{Lat: 41.9088, Lng: -87.6796},
			Demographics: model.Demographics{
				Population:     26000,
				MedianAge:      33,
				MedianIncome:   88000,
				EducationLevel: "Bachelor's Degree",
			},
			Lifestyle: model.Lifestyle{
				Walkability:  model.Float64Ptr(92),
				Transit:      model.Float64Ptr(78),
				Bike:         model.Float64Ptr(88),
				CrimeRate:    model.Float64Ptr(45),
				SchoolRating: model.Float64Ptr(6),
			},
			Amenities: model.Amenities{
				Restaurants: 110,
				Parks:       4,
				Gyms:        9,
				Shopping:    35,
				Nightlife:   30,
				Healthcare:  4,
			},
			Housing: model.Housing{
				MedianRent:      model.Float64Ptr(1900),
				MedianHomePrice: model.Float64Ptr(550000),
				RentRange:       &model.PriceRange{Min: 1200, Max: 3800},
			},
			Description: "Former artist enclave turned boutique shopping and dining destination, anchored by the 606 trail and the Blue Line.",
			Tags:        []string{"urban", "walkable", "shopping", "artsy", "trendy"},
		},
		{
			ID:          "aus-mueller",
			Name:        "Mueller",
			City:        "Austin",
			State:       "TX",
			Coordinates: model.Coordinates{Lat: 30.2996, Lng: -97.7041},
			Demographics: model.Demographics{
				Population:     14000,
				MedianAge:      37,
				MedianIncome:   95000,
				EducationLevel: "Graduate Degree",
			},
			Lifestyle: model.Lifestyle{
				Walkability:  model.Float64Ptr(70),
				Transit:      model.Float64Ptr(45),
				Bike:         model.Float64Ptr(82),
				CrimeRate:    model.Float64Ptr(18),
				SchoolRating: model.Float64Ptr(8),
			},
			Amenities: model.Amenities{
				Restaurants: 40,
				Parks:       13,
				Gyms:        6,
				Shopping:    15,
				Nightlife:   8,
				Healthcare:  9,
			},
			Housing: model.Housing{
				MedianRent:      model.Float64Ptr(2300),
				MedianHomePrice: model.Float64Ptr(680000),
				RentRange:       &model.PriceRange{Min: 1500, Max: 4200},
			},
			Description: "Master-planned community on the old airport site with abundant parks, a weekly farmers market, and family-oriented amenities.",
			Tags:        []string{"suburban", "family-friendly", "parks", "planned", "green"},
		},
		{
			ID:          "den-washington-park",
			Name:        "Washington Park",
			City:        "Denver",
			State:       "CO",
			Coordinates: model.Coordinates{Lat: 39.7005, Lng: -104.9663},
			Demographics: model.Demographics{
				Population:     7500,
				MedianAge:      38,
				MedianIncome:   110000,
				EducationLevel: "Graduate Degree",
			},
			Lifestyle: model.Lifestyle{
				Walkability:  model.Float64Ptr(75),
				Transit:      model.Float64Ptr(40),
				Bike:         model.Float64Ptr(85),
				CrimeRate:    model.Float64Ptr(12),
				SchoolRating: model.Float64Ptr(9),
			},
			Amenities: model.Amenities{
				Restaurants: 35,
				Parks:       16,
				Gyms:        7,
				Shopping:    12,
				Nightlife:   6,
				Healthcare:  5,
			},
			Housing: model.Housing{
				MedianRent:      model.Float64Ptr(2400),
				MedianHomePrice: model.Float64Ptr(950000),
				RentRange:       &model.PriceRange{Min: 1600, Max: 4800},
			},
			Description: "Quiet residential blocks wrapped around one of Denver's largest parks, with strong schools and easy access to running and cycling loops.",
			Tags:        []string{"residential", "parks", "family-friendly", "safe", "outdoors"},
		},
		{
			ID:          "pit-squirrel-hill",
			Name:        "Squirrel Hill",
			City:        "Pittsburgh",
			State:       "PA",
			Coordinates: model.Coordinates{Lat: 40.4382, Lng: -79.9226},
			Demographics: model.Demographics{
				Population:     27000,
				MedianAge:      35,
				MedianIncome:   65000,
				EducationLevel: "Graduate Degree",
			},
			Lifestyle: model.Lifestyle{
				Walkability:  model.Float64Ptr(80),
				Transit:      model.Float64Ptr(60),
				Bike:         model.Float64Ptr(55),
				CrimeRate:    model.Float64Ptr(14),
				SchoolRating: model.Float64Ptr(9),
			},
			Amenities: model.Amenities{
				Restaurants: 60,
				Parks:       10,
				Gyms:        5,
				Shopping:    18,
				Nightlife:   10,
				Healthcare:  10,
			},
			Housing: model.Housing{
				MedianRent:      model.Float64Ptr(1400),
				MedianHomePrice: model.Float64Ptr(420000),
				RentRange:       &model.PriceRange{Min: 900, Max: 2800},
			},
			Description: "Leafy, affordable neighborhood between two large city parks, known for excellent public schools and a walkable commercial spine.",
			Tags:        []string{"residential", "affordable", "family-friendly", "parks", "schools"},
		},
	}
}
