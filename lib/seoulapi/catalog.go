package seoulapi

import (
	"seoulopendata/lib/textutil"

	"github.com/antzucaro/matchr"
)

type KnownService struct {
	Name        string
	Description string
}

// Catalog lists dataset services this tool is commonly pointed at. It
// is advisory only: the API remains the authority on what exists, so an
// unknown name still gets requested as-is.
var Catalog = []KnownService{
	{"ListAirQualityByDistrictService", "hourly air quality readings by district"},
	{"RealtimeCityAir", "realtime city air quality by measurement network"},
	{"CardSubwayStatsNew", "daily subway ridership by line and station"},
	{"CardBusStatisticsServiceNew", "daily bus ridership by route"},
	{"SearchParkInfoService", "city park locations and facilities"},
	{"SeoulPublicLibraryInfo", "public library locations and hours"},
	{"ListRainfallService", "rainfall gauge readings by district"},
	{"tbLnOpendataRtmsV", "real estate transaction records"},
}

func IsKnownService(name string) bool {
	normalized := textutil.NormalizeService(name)
	for _, service := range Catalog {
		if textutil.NormalizeService(service.Name) == normalized {
			return true
		}
	}
	return false
}

// SuggestService returns the catalog entry closest to name, or "" when
// nothing is similar enough to be a plausible typo.
func SuggestService(name string) string {
	normalized := textutil.NormalizeService(name)

	var mostSimilarity float64
	var mostSimilar string

	for _, service := range Catalog {
		similarity := matchr.JaroWinkler(
			normalized,
			textutil.NormalizeService(service.Name),
			false,
		)
		if similarity > mostSimilarity {
			mostSimilarity = similarity
			mostSimilar = service.Name
		}
	}

	if mostSimilarity < 0.8 {
		return ""
	}
	return mostSimilar
}
