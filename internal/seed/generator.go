package seed

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okian/hoodmatch/internal/domain/model"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	profileDivisor     = 4
)

// Constants for generated attribute ranges per neighborhood profile.
const (
	denseUrbanWalkMin   = 85.0
	denseUrbanWalkRange = 15.0
	denseUrbanRentMin   = 2200.0
	denseUrbanRentRange = 2800.0

	midUrbanWalkMin   = 65.0
	midUrbanWalkRange = 25.0
	midUrbanRentMin   = 1400.0
	midUrbanRentRange = 1400.0

	suburbanWalkMin   = 35.0
	suburbanWalkRange = 35.0
	suburbanRentMin   = 1100.0
	suburbanRentRange = 1200.0

	ruralWalkMin   = 5.0
	ruralWalkRange = 30.0
	ruralRentMin   = 700.0
	ruralRentRange = 900.0

	crimeRateMax     = 80
	schoolRatingMax  = 10
	restaurantsMax   = 200
	parksMax         = 20
	gymsMax          = 15
	shoppingMax      = 40
	nightlifeMax     = 60
	healthcareMax    = 12
	latitudeMin      = 25.0
	latitudeRange    = 22.0
	longitudeMin     = -124.0
	longitudeRange   = 53.0
	transitJitter    = 20.0
	rentToPriceRatio = 300.0
)

// Profile cases control the shape of a generated neighborhood.
const (
	caseDenseUrban = 0
	caseMidUrban   = 1
	caseSuburban   = 2
	caseRural      = 3
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// getRandomInt returns a random int in [0, max) using crypto/rand.
func getRandomInt(max int64) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(max))
	return int(n.Int64())
}

// Generate creates n synthetic neighborhoods with varied profiles. Each gets
// a unique uuid-backed ID so generated batches never collide with the
// curated samples or each other.
func Generate(n int) []model.Neighborhood {
	out := make([]model.Neighborhood, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, generateSingle(i))
	}
	return out
}

// generateSingle creates one synthetic neighborhood with the given index.
func generateSingle(index int) model.Neighborhood {
	profile := int64(getRandomInt(profileDivisor))

	var walkMin, walkRange, rentMin, rentRange float64
	var tag string
	switch profile {
	case caseDenseUrban:
		walkMin, walkRange = denseUrbanWalkMin, denseUrbanWalkRange
		rentMin, rentRange = denseUrbanRentMin, denseUrbanRentRange
		tag = "urban"
	case caseMidUrban:
		walkMin, walkRange = midUrbanWalkMin, midUrbanWalkRange
		rentMin, rentRange = midUrbanRentMin, midUrbanRentRange
		tag = "urban"
	case caseSuburban:
		walkMin, walkRange = suburbanWalkMin, suburbanWalkRange
		rentMin, rentRange = suburbanRentMin, suburbanRentRange
		tag = "suburban"
	default:
		walkMin, walkRange = ruralWalkMin, ruralWalkRange
		rentMin, rentRange = ruralRentMin, ruralRentRange
		tag = "rural"
	}

	walk := walkMin + getRandomFloat()*walkRange
	// Transit tracks walkability with some jitter, floored at zero.
	transit := walk - transitJitter*getRandomFloat()
	if transit < 0 {
		transit = 0
	}
	rent := rentMin + getRandomFloat()*rentRange

	id := uuid.New().String()
	name := "Generated Neighborhood " + strconv.Itoa(index+1)

	return model.Neighborhood{
		ID:          id,
		Name:        name,
		City:        "Testville",
		State:       "TS",
		Coordinates: model.Coordinates{
			Lat: latitudeMin + getRandomFloat()*latitudeRange,
			Lng: longitudeMin + getRandomFloat()*longitudeRange,
		},
		Lifestyle: model.Lifestyle{
			Walkability:  model.Float64Ptr(walk),
			Transit:      model.Float64Ptr(transit),
			Bike:         model.Float64Ptr(getRandomFloat() * 100),
			CrimeRate:    model.Float64Ptr(float64(getRandomInt(crimeRateMax))),
			SchoolRating: model.Float64Ptr(float64(getRandomInt(schoolRatingMax + 1))),
		},
		Amenities: model.Amenities{
			Restaurants: getRandomInt(restaurantsMax),
			Parks:       getRandomInt(parksMax),
			Gyms:        getRandomInt(gymsMax),
			Shopping:    getRandomInt(shoppingMax),
			Nightlife:   getRandomInt(nightlifeMax),
			Healthcare:  getRandomInt(healthcareMax),
		},
		Housing: model.Housing{
			MedianRent:      model.Float64Ptr(rent),
			MedianHomePrice: model.Float64Ptr(rent * rentToPriceRatio),
		},
		Tags:        []string{tag, "generated"},
		LastUpdated: time.Now().UTC(),
	}
}
