package usecase

// Распространённые коды нарушений парковки NYC и размеры штрафов.
// Датасет нарушений не содержит описаний и сумм, поэтому они
// восстанавливаются по коду при загрузке.

var violationCodeDescriptions = map[string]string{
	"14": "NO STANDING-DAY/TIME LIMITS",
	"16": "NO STANDING-BUS STOP",
	"17": "NO PARKING-DAY/TIME LIMITS",
	"19": "NO PARKING-BUS STOP",
	"20": "NO PARKING-DAY/TIME LIMITS",
	"21": "NO PARKING-STREET CLEANING",
	"34": "EXPIRED MUNI METER",
	"35": "FAIL TO DSPLY MUNI METER RECPT",
	"37": "EXPIRED METER",
	"38": "OVERTIME STANDING",
	"40": "FIRE HYDRANT",
	"46": "DOUBLE PARKING",
	"47": "DOUBLE PARKING",
	"50": "PHTO SCHOOL ZN SPEED VIOLATION",
	"67": "BLOCKING PEDESTRIAN RAMP",
	"69": "FAILURE TO STOP AT RED LIGHT",
	"71": "NO PARKING WHERE PROHIBITED",
	"78": "NO PARKING-NIGHTTIME",
}

var violationCodeFines = map[string]float64{
	"14": 115, "16": 115, "17": 65, "19": 115, "20": 65,
	"21": 65, "34": 35, "35": 35, "37": 25, "38": 35,
	"40": 115, "46": 115, "47": 115, "50": 50, "67": 165,
	"69": 50, "71": 65, "78": 35,
}

var countyToBorough = map[string]string{
	"NY": "MANHATTAN",
	"BX": "BRONX",
	"BK": "BROOKLYN",
	"QN": "QUEENS",
	"ST": "STATEN ISLAND",
}

func descriptionForCode(code string) string {
	if desc, ok := violationCodeDescriptions[code]; ok {
		return desc
	}
	return "Violation Code " + code
}

func fineForCode(code string) float64 {
	if fine, ok := violationCodeFines[code]; ok {
		return fine
	}
	return 50 // Default fine
}

func boroughForCounty(county string) string {
	if borough, ok := countyToBorough[county]; ok {
		return borough
	}
	return "UNKNOWN"
}
