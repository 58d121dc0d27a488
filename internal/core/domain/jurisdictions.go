package domain

// Fallback jurisdiction keys used when a location signal names a recognized
// country but no recognized state/province, or no usable location at all.
const (
	JurisdictionDefaultUS            = "DEFAULT_US"
	JurisdictionDefaultCA            = "DEFAULT_CA"
	JurisdictionDefaultInternational = "DEFAULT_INTERNATIONAL"
)

// Jurisdictions is the static tax jurisdiction table: all 50 US states plus
// DC, all 13 Canadian provinces and territories, and the three DEFAULT_*
// fallbacks. Hand-maintained domain data, never fetched at runtime.
//
// States with no statewide sales tax (AK, DE, MT, NH, OR) are present with an
// empty component list so they resolve to a zero-tax result rather than to
// the DEFAULT_US estimate.
var Jurisdictions = map[string]TaxJurisdiction{
	// United States
	"AL": {Code: "AL", Location: "Alabama", Taxes: []TaxComponent{{Name: "Alabama Sales Tax", Rate: 0.04, Type: TaxSales}}},
	"AK": {Code: "AK", Location: "Alaska", Taxes: []TaxComponent{}},
	"AZ": {Code: "AZ", Location: "Arizona", Taxes: []TaxComponent{{Name: "Arizona Sales Tax", Rate: 0.056, Type: TaxSales}}},
	"AR": {Code: "AR", Location: "Arkansas", Taxes: []TaxComponent{{Name: "Arkansas Sales Tax", Rate: 0.065, Type: TaxSales}}},
	"CA": {Code: "CA", Location: "California", Taxes: []TaxComponent{{Name: "California Sales Tax", Rate: 0.0725, Type: TaxSales}}},
	"CO": {Code: "CO", Location: "Colorado", Taxes: []TaxComponent{{Name: "Colorado Sales Tax", Rate: 0.029, Type: TaxSales}}},
	"CT": {Code: "CT", Location: "Connecticut", Taxes: []TaxComponent{{Name: "Connecticut Sales Tax", Rate: 0.0635, Type: TaxSales}}},
	"DE": {Code: "DE", Location: "Delaware", Taxes: []TaxComponent{}},
	"DC": {Code: "DC", Location: "District of Columbia", Taxes: []TaxComponent{{Name: "DC Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"FL": {Code: "FL", Location: "Florida", Taxes: []TaxComponent{{Name: "Florida Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"GA": {Code: "GA", Location: "Georgia", Taxes: []TaxComponent{{Name: "Georgia Sales Tax", Rate: 0.04, Type: TaxSales}}},
	"HI": {Code: "HI", Location: "Hawaii", Taxes: []TaxComponent{{Name: "Hawaii General Excise Tax", Rate: 0.04, Type: TaxExcise}}},
	"ID": {Code: "ID", Location: "Idaho", Taxes: []TaxComponent{{Name: "Idaho Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"IL": {Code: "IL", Location: "Illinois", Taxes: []TaxComponent{{Name: "Illinois Sales Tax", Rate: 0.0625, Type: TaxSales}}},
	"IN": {Code: "IN", Location: "Indiana", Taxes: []TaxComponent{{Name: "Indiana Sales Tax", Rate: 0.07, Type: TaxSales}}},
	"IA": {Code: "IA", Location: "Iowa", Taxes: []TaxComponent{{Name: "Iowa Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"KS": {Code: "KS", Location: "Kansas", Taxes: []TaxComponent{{Name: "Kansas Sales Tax", Rate: 0.065, Type: TaxSales}}},
	"KY": {Code: "KY", Location: "Kentucky", Taxes: []TaxComponent{{Name: "Kentucky Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"LA": {Code: "LA", Location: "Louisiana", Taxes: []TaxComponent{{Name: "Louisiana Sales Tax", Rate: 0.0445, Type: TaxSales}}},
	"ME": {Code: "ME", Location: "Maine", Taxes: []TaxComponent{{Name: "Maine Sales Tax", Rate: 0.055, Type: TaxSales}}},
	"MD": {Code: "MD", Location: "Maryland", Taxes: []TaxComponent{{Name: "Maryland Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"MA": {Code: "MA", Location: "Massachusetts", Taxes: []TaxComponent{{Name: "Massachusetts Sales Tax", Rate: 0.0625, Type: TaxSales}}},
	"MI": {Code: "MI", Location: "Michigan", Taxes: []TaxComponent{{Name: "Michigan Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"MN": {Code: "MN", Location: "Minnesota", Taxes: []TaxComponent{{Name: "Minnesota Sales Tax", Rate: 0.06875, Type: TaxSales}}},
	"MS": {Code: "MS", Location: "Mississippi", Taxes: []TaxComponent{{Name: "Mississippi Sales Tax", Rate: 0.07, Type: TaxSales}}},
	"MO": {Code: "MO", Location: "Missouri", Taxes: []TaxComponent{{Name: "Missouri Sales Tax", Rate: 0.04225, Type: TaxSales}}},
	"MT": {Code: "MT", Location: "Montana", Taxes: []TaxComponent{}},
	"NE": {Code: "NE", Location: "Nebraska", Taxes: []TaxComponent{{Name: "Nebraska Sales Tax", Rate: 0.055, Type: TaxSales}}},
	"NV": {Code: "NV", Location: "Nevada", Taxes: []TaxComponent{{Name: "Nevada Sales Tax", Rate: 0.0685, Type: TaxSales}}},
	"NH": {Code: "NH", Location: "New Hampshire", Taxes: []TaxComponent{}},
	"NJ": {Code: "NJ", Location: "New Jersey", Taxes: []TaxComponent{{Name: "New Jersey Sales Tax", Rate: 0.06625, Type: TaxSales}}},
	"NM": {Code: "NM", Location: "New Mexico", Taxes: []TaxComponent{{Name: "New Mexico Gross Receipts Tax", Rate: 0.05125, Type: TaxGrossReceipts}}},
	"NY": {Code: "NY", Location: "New York", Taxes: []TaxComponent{{Name: "New York Sales Tax", Rate: 0.04, Type: TaxSales}}},
	"NC": {Code: "NC", Location: "North Carolina", Taxes: []TaxComponent{{Name: "North Carolina Sales Tax", Rate: 0.0475, Type: TaxSales}}},
	"ND": {Code: "ND", Location: "North Dakota", Taxes: []TaxComponent{{Name: "North Dakota Sales Tax", Rate: 0.05, Type: TaxSales}}},
	"OH": {Code: "OH", Location: "Ohio", Taxes: []TaxComponent{{Name: "Ohio Sales Tax", Rate: 0.0575, Type: TaxSales}}},
	"OK": {Code: "OK", Location: "Oklahoma", Taxes: []TaxComponent{{Name: "Oklahoma Sales Tax", Rate: 0.045, Type: TaxSales}}},
	"OR": {Code: "OR", Location: "Oregon", Taxes: []TaxComponent{}},
	"PA": {Code: "PA", Location: "Pennsylvania", Taxes: []TaxComponent{{Name: "Pennsylvania Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"RI": {Code: "RI", Location: "Rhode Island", Taxes: []TaxComponent{{Name: "Rhode Island Sales Tax", Rate: 0.07, Type: TaxSales}}},
	"SC": {Code: "SC", Location: "South Carolina", Taxes: []TaxComponent{{Name: "South Carolina Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"SD": {Code: "SD", Location: "South Dakota", Taxes: []TaxComponent{{Name: "South Dakota Sales Tax", Rate: 0.045, Type: TaxSales}}},
	"TN": {Code: "TN", Location: "Tennessee", Taxes: []TaxComponent{{Name: "Tennessee Sales Tax", Rate: 0.07, Type: TaxSales}}},
	"TX": {Code: "TX", Location: "Texas", Taxes: []TaxComponent{{Name: "Texas Sales Tax", Rate: 0.0625, Type: TaxSales}}},
	"UT": {Code: "UT", Location: "Utah", Taxes: []TaxComponent{{Name: "Utah Sales Tax", Rate: 0.0485, Type: TaxSales}}},
	"VT": {Code: "VT", Location: "Vermont", Taxes: []TaxComponent{{Name: "Vermont Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"VA": {Code: "VA", Location: "Virginia", Taxes: []TaxComponent{{Name: "Virginia Sales Tax", Rate: 0.053, Type: TaxSales}}},
	"WA": {Code: "WA", Location: "Washington", Taxes: []TaxComponent{{Name: "Washington Sales Tax", Rate: 0.065, Type: TaxSales}}},
	"WV": {Code: "WV", Location: "West Virginia", Taxes: []TaxComponent{{Name: "West Virginia Sales Tax", Rate: 0.06, Type: TaxSales}}},
	"WI": {Code: "WI", Location: "Wisconsin", Taxes: []TaxComponent{{Name: "Wisconsin Sales Tax", Rate: 0.05, Type: TaxSales}}},
	"WY": {Code: "WY", Location: "Wyoming", Taxes: []TaxComponent{{Name: "Wyoming Sales Tax", Rate: 0.04, Type: TaxSales}}},

	// Canada
	"AB": {Code: "AB", Location: "Alberta", Taxes: []TaxComponent{{Name: "GST", Rate: 0.05, Type: TaxGST}}},
	"BC": {Code: "BC", Location: "British Columbia", Taxes: []TaxComponent{{Name: "GST", Rate: 0.05, Type: TaxGST}, {Name: "PST", Rate: 0.07, Type: TaxPST}}},
	"MB": {Code: "MB", Location: "Manitoba", Taxes: []TaxComponent{{Name: "GST", Rate: 0.05, Type: TaxGST}, {Name: "PST", Rate: 0.07, Type: TaxPST}}},
	"NB": {Code: "NB", Location: "New Brunswick", Taxes: []TaxComponent{{Name: "HST", Rate: 0.15, Type: TaxHST}}},
	"NL": {Code: "NL", Location: "Newfoundland and Labrador", Taxes: []TaxComponent{{Name: "HST", Rate: 0.15, Type: TaxHST}}},
	"NT": {Code: "NT", Location: "Northwest Territories", Taxes: []TaxComponent{{Name: "GST", Rate: 0.05, Type: TaxGST}}},
	"NS": {Code: "NS", Location: "Nova Scotia", Taxes: []TaxComponent{{Name: "HST", Rate: 0.15, Type: TaxHST}}},
	"NU": {Code: "NU", Location: "Nunavut", Taxes: []TaxComponent{{Name: "GST", Rate: 0.05, Type: TaxGST}}},
	"ON": {Code: "ON", Location: "Ontario", Taxes: []TaxComponent{{Name: "HST", Rate: 0.13, Type: TaxHST}}},
	"PE": {Code: "PE", Location: "Prince Edward Island", Taxes: []TaxComponent{{Name: "HST", Rate: 0.15, Type: TaxHST}}},
	"QC": {Code: "QC", Location: "Quebec", Taxes: []TaxComponent{{Name: "GST", Rate: 0.05, Type: TaxGST}, {Name: "QST", Rate: 0.09975, Type: TaxQST}}},
	"SK": {Code: "SK", Location: "Saskatchewan", Taxes: []TaxComponent{{Name: "GST", Rate: 0.05, Type: TaxGST}, {Name: "PST", Rate: 0.06, Type: TaxPST}}},
	"YT": {Code: "YT", Location: "Yukon", Taxes: []TaxComponent{{Name: "GST", Rate: 0.05, Type: TaxGST}}},

	// Fallbacks
	JurisdictionDefaultUS:            {Code: JurisdictionDefaultUS, Location: "United States", Taxes: []TaxComponent{{Name: "Estimated Sales Tax", Rate: 0.06, Type: TaxSales}}},
	JurisdictionDefaultCA:            {Code: JurisdictionDefaultCA, Location: "Canada", Taxes: []TaxComponent{{Name: "GST", Rate: 0.05, Type: TaxGST}}},
	JurisdictionDefaultInternational: {Code: JurisdictionDefaultInternational, Location: "International", Taxes: []TaxComponent{}},
}

// JurisdictionByCode returns the jurisdiction for a code, reporting whether
// the code is known.
func JurisdictionByCode(code string) (TaxJurisdiction, bool) {
	j, ok := Jurisdictions[code]
	return j, ok
}
