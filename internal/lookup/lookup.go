// Package lookup holds the static reference tables the fixture pipeline samples
// from: currencies, stock listings, regional data and name pools.
package lookup

// Currency is one entry of the fixed currency list. IDs are assigned by list
// position (1-based) when the pipeline emits the currency table.
type Currency struct {
	Code   string
	Symbol string
}

// Currencies returns the fixed currency list in emission order.
func Currencies() []Currency {
	return []Currency{
		{"USD", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"JPY", "¥"},
		{"CAD", "$"},
		{"RUB", "₽"},
		{"INR", "₹"},
		{"RSD", "din"},
		{"AUD", "$"},
		{"CNY", "¥"},
		{"NZD", "$"},
		{"CHF", "Fr"},
		{"SEK", "kr"},
	}
}

// Listing is one tradeable stock from the fixed listing table.
type Listing struct {
	Code string
	Name string
}

// Listings returns the fixed stock listing table in emission order.
func Listings() []Listing {
	return []Listing{
		{"AAPL", "Apple"},
		{"GOOG", "Google"},
		{"MSFT", "Microsoft"},
		{"FB", "Facebook"},
		{"AMZN", "Amazon"},
		{"TWTR", "Twitter"},
		{"NFLX", "Netflix"},
		{"TSLA", "Tesla"},
		{"BABA", "Alibaba"},
		{"NVDA", "Nvidia"},
		{"AMD", "AMD"},
		{"INTC", "Intel"},
		{"CSCO", "Cisco"},
		{"ADBE", "Adobe"},
		{"ADP", "Autodesk"},
		{"CMCSA", "Comcast"},
	}
}

// CountryNames is the pool of country names for regional information rows.
var CountryNames = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola", "Antigua & Deps", "Argentina", "Armenia", "Australia",
	"Austria", "Azerbaijan", "Bahamas", "Bahrain", "Bangladesh", "Barbados", "Belarus", "Belgium", "Belize", "Benin",
	"Bhutan", "Bolivia", "Bosnia Herzegovina", "Botswana", "Brazil", "Brunei", "Bulgaria", "Burkina", "Burundi", "Cambodia",
	"Cameroon", "Canada", "Cape Verde", "Central African Rep", "Chad", "Chile", "China", "Colombia", "Comoros", "Congo",
	"Costa Rica", "Croatia", "Cuba", "Cyprus", "Czech Republic", "Denmark", "Djibouti", "Dominica",
	"Dominican Republic", "East Timor", "Ecuador", "Egypt", "El Salvador", "Equatorial Guinea", "Eritrea", "Estonia", "Ethiopia",
	"Fiji", "Finland", "France", "Gabon", "Gambia", "Georgia", "Germany", "Ghana", "Greece", "Grenada", "Guatemala", "Guinea", "Guinea-Bissau",
	"Guyana", "Haiti", "Honduras", "Hungary", "Iceland", "India", "Indonesia", "Iran", "Iraq", "Ireland", "Israel", "Italy",
	"Ivory Coast", "Jamaica", "Japan", "Jordan", "Kazakhstan", "Kenya", "Kiribati", "Korea North", "Korea South", "Kosovo", "Kuwait", "Kyrgyzstan",
	"Laos", "Latvia", "Lebanon", "Lesotho", "Liberia", "Libya", "Liechtenstein", "Lithuania", "Luxembourg", "Macedonia", "Madagascar", "Malawi",
	"Malaysia", "Maldives", "Mali", "Malta", "Marshall Islands", "Mauritania", "Mauritius", "Mexico", "Micronesia", "Moldova", "Monaco",
	"Mongolia", "Montenegro", "Morocco", "Mozambique", "Myanmar", "Namibia", "Nauru", "Nepal", "Netherlands", "New Zealand",
	"Nicaragua", "Niger", "Nigeria", "Norway", "Oman", "Pakistan", "Palau", "Panama", "Papua New Guinea", "Paraguay", "Peru", "Philippines",
	"Poland", "Portugal", "Qatar", "Romania", "Russian Federation", "Rwanda", "St Kitts & Nevis", "St Lucia", "Saint Vincent & the Grenadines",
	"Samoa", "San Marino", "Sao Tome & Principe", "Saudi Arabia", "Senegal", "Serbia", "Seychelles", "Sierra Leone", "Singapore", "Slovakia",
	"Slovenia", "Solomon Islands", "Somalia", "South Africa", "South Sudan", "Spain", "Sri Lanka", "Sudan", "Suriname", "Swaziland", "Sweden",
	"Switzerland", "Syria", "Taiwan", "Tajikistan", "Tanzania", "Thailand", "Togo", "Tonga", "Trinidad & Tobago", "Tunisia", "Turkey", "Turkmenistan",
	"Tuvalu", "Uganda", "Ukraine", "United Arab Emirates", "United Kingdom", "United States", "Uruguay", "Uzbekistan", "Vanuatu",
	"Vatican City", "Venezuela", "Vietnam", "Yemen", "Zambia", "Zimbabwe",
}

// Cities is the pool of city names for regional information rows.
var Cities = []string{
	"Aberdeen", "Abilene", "Akron", "Albany", "Albuquerque", "Alexandria", "Allentown", "Amarillo", "Anaheim", "Anchorage",
	"Ann Arbor", "Antioch", "Apple Valley", "Appleton", "Arlington", "Arvada", "Asheville", "Athens", "Atlanta", "Atlantic City",
	"Augusta", "Aurora", "Austin", "Bakersfield", "Baltimore", "Barnstable", "Baton Rouge", "Beaumont", "Bel Air", "Bellevue",
	"Berkeley", "Bethlehem", "Billings", "Birmingham", "Bloomington", "Boise", "Boise City", "Bonita Springs", "Boston", "Boulder",
	"Bradenton", "Bremerton", "Bridgeport", "Brighton", "Brownsville", "Bryan", "Buffalo", "Burbank", "Burlington", "Cambridge",
	"Canton", "Cape Coral", "Carrollton", "Cary", "Cathedral City", "Cedar Rapids", "Champaign", "Chandler", "Charleston", "Charlotte",
	"Chattanooga", "Chesapeake", "Chicago", "Chula Vista", "Cincinnati", "Clarke County", "Clarksville", "Clearwater", "Cleveland",
	"College Station", "Colorado Springs", "Columbia", "Columbus", "Concord", "Coral Springs", "Corona", "Corpus Christi", "Costa Mesa",
	"Dallas", "Daly City", "Danbury", "Davenport", "Davidson County", "Dayton", "Daytona Beach", "Deltona", "Denton", "Denver",
	"Des Moines", "Detroit", "Downey", "Duluth", "Durham", "El Monte", "El Paso", "Elizabeth", "Elk Grove", "Elkhart", "Erie",
	"Lincoln", "New York", "Los Angeles", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego",
	"San Jose", "Jacksonville", "Indianapolis", "San Francisco", "Memphis", "Fort Worth",
	"Seattle", "Washington", "Milwaukee", "Louisville/Jefferson County", "Las Vegas",
	"Nashville-Davidson", "Oklahoma City", "Portland", "Tucson", "Long Beach", "Fresno", "Sacramento",
	"Mesa", "Kansas City", "Virginia Beach", "Omaha", "Miami", "Oakland", "Tulsa", "Honolulu", "Minneapolis",
	"Wichita", "Raleigh", "St. Louis", "Santa Ana", "Tampa", "Pittsburgh",
	"Toledo", "Riverside", "Stockton", "Newark", "St. Paul", "Lexington-Fayette",
	"Plano", "Fort Wayne", "St. Petersburg", "Glendale", "Jersey City", "Henderson", "Greensboro", "Scottsdale",
	"Norfolk", "Madison", "New Orleans", "Orlando", "Garland", "Hialeah", "Laredo", "Lubbock", "Reno",
	"Rochester", "Modesto", "Montgomery", "Fremont", "Shreveport", "Oxford", "Nottingham", "Manchester",
	"Providence", "Tacoma", "Richmond", "Spokane", "Yonkers", "Moreno Valley",
	"Mobile", "Little Rock", "Salt Lake City", "Huntington Beach", "Grand Rapids", "Tallahassee", "Huntsville", "Knoxville", "Worcester",
	"Newport News", "Santa Clarita", "Fort Lauderdale", "Overland Park", "Garden Grove", "Oceanside", "Jackson", "Rancho Cucamonga",
	"Santa Rosa", "Port St. Lucie", "Tempe", "Ontario", "Vancouver", "Springfield", "Peoria", "Pembroke Pines", "Eugene", "Salem",
	"London", "Liverpool", "Leeds", "Sheffield", "Bradford", "Bristol", "Cardiff", "Coventry",
	"Edinburgh", "Exeter", "Glasgow", "Kingston upon Hull", "Luton", "Newcastle upon Tyne", "Norwich", "Portsmouth", "Salford",
	"Stoke-on-Trent", "Swansea", "Wolverhampton", "Belfast", "Bournemouth", "Canterbury", "Cheltenham",
	"Colchester", "Derby", "Dover", "Ely", "Gloucester", "Hereford", "Inverness", "Lichfield",
	"Moscow", "Saint Petersburg", "Novosibirsk", "Yekaterinburg", "Nizhny Novgorod", "Samara", "Omsk", "Kazan", "Chelyabinsk", "Rostov-on-Don",
	"Aizkraukle", "Aluksnes", "Balvi", "Bauska", "Broceni", "Dagda", "Daugavpils", "Dobele", "Gulbene", "Jekabpils", "Jelgava",
	"Jurmala", "Kuldiga", "Liepaja", "Limbazi", "Ludza", "Madona", "Ogre", "Ozolnieki", "Preili", "Rezekne", "Riga", "Ropazi",
	"Berlin", "Hamburg", "Munich", "Cologne", "Frankfurt", "Stuttgart", "Dortmund", "Dresden", "Leipzig", "Nuremberg", "Düsseldorf",
	"Bremen", "Hannover", "Duisburg", "Essen", "Bochum", "Wuppertal", "Bielefeld", "Bonn", "Münster", "Mönchengladbach",
	"Aichi", "Akita", "Aomori", "Chiba", "Ehime", "Fukui", "Fukuoka", "Fukushima", "Gifu", "Gunma", "Hiroshima", "Hokkaido",
	"Hyogo", "Ibaraki", "Ishikawa", "Iwate", "Kagawa", "Kagoshima", "Kanagawa", "Kochi", "Kumamoto", "Kyoto", "Mie", "Miyagi",
	"Miyazaki", "Nagano", "Nagasaki", "Nara", "Niigata", "Oita", "Okayama", "Okinawa", "Osaka", "Saga", "Saitama", "Shiga",
	"Shimane", "Shizuoka", "Tochigi", "Tokushima", "Tokyo", "Tottori", "Toyama", "Wakayama", "Yamagata", "Yamaguchi", "Yamanashi",
}

// Postcodes is the pool of postcode strings for regional information rows.
var Postcodes = []string{
	"AB1 2CD", "CD3 4EF", "EF5 6GH", "GH7 8IJ", "IJ9 0KL", "KL1 2MN", "MN3 4OP", "OP5 6QR", "QR7 8ST", "ST4 0UV", "UV1 2WX",
	"WX3 4YZ", "YZ5 6AB", "AB2 3CD", "CD4 5EF", "EF6 7GH", "GH8 9IJ", "IJ0 1KL", "KL2 3MN", "MN4 5OP", "OP6 8QR", "QR9 0ST",
	"ST0 1UV", "UV2 3WX", "WX4 5YZ", "YZ6 7AB", "AB3 4CD", "CD5 6EF", "EF7 8GH", "GH0 9IJ", "IJ1 0KL", "KL3 4MN", "MN5 6OP",
	"OP7 0QR", "QR0 1ST", "ST2 2UV", "UV3 4WX", "WX5 6YZ", "YZ7 8AB", "AB4 5CD", "CD6 7EF", "EF8 9GH", "GH1 0IJ", "IJ2 1KL",
	"12345", "23456", "34567", "45678", "56789", "67890", "78901", "89012", "90123", "01234", "12346",
	"111-0051", "111-0052", "111-0053", "111-0054", "111-0055", "111-0056", "111-0057", "111-0058", "111-0059", "111-0060", "111-0061",
	"111-0062", "111-0063", "111-0064", "111-0065", "111-0066", "111-0067", "111-0068", "111-0069", "111-0070", "111-0071", "111-0072",
	"10369", "10405", "10437", "10457", "10459", "10473", "10477", "10487", "10489", "10491", "10493", "10497", "10499", "10513",
	"10517", "10519", "10523", "10527", "10531", "10533", "10537", "10539", "10549", "10555", "10557", "10559", "10561", "10563",
	"190000", "190001", "190002", "190003", "190004", "190005", "190006", "190007", "190008", "190009", "190010", "190011", "190012",
	"190013", "190014", "190015", "190016", "190017", "190018", "190019", "190020", "190021", "190022",
}

// FirstNames and LastNames feed full-name generation for client rows.
var FirstNames = []string{
	"Alfred", "Alice", "Alison", "Amanda", "Amy", "Andrea", "Angela", "Anita", "Ann", "Anne", "Annette", "Annie", "Antonia",
	"April", "Arlene", "Ashley", "Audrey", "Barbara", "Beatrice", "Bernice", "Beverly",
}

var LastNames = []string{
	"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller", "Wilson", "Moore", "Taylor", "Anderson", "Thomas",
	"Jackson", "White", "Harris", "Martin", "Thompson", "Garcia", "Martinez", "Robinson", "Clark", "Rodriguez", "Lewis",
}

// StreetNames feeds postal address generation.
var StreetNames = []string{
	"Main", "High", "Pearl", "Maple", "Park", "Central", "Pine", "Lake", "Hill", "Parkway", "Church", "Valley", "Avenue",
	"Boulevard", "Circle", "Drive", "Road", "Lane", "Place", "Square", "Way", "Trail",
}

// InstallmentCounts is the fixed menu of expected loan payment counts.
var InstallmentCounts = []int{1, 2, 3, 4, 5, 6, 12, 24, 36, 48, 60}
