package iban

// countryTable lists every supported country. Format masks carry the country
// letters literally followed by role symbols; spaces only group the mask for
// reading and are stripped when the registry is built.
var countryTable = []countryEntry{
	{"AD", "AND", "020", "Andorra", true, "ADkk bbbb ssss cccc cccc cccc"},
	{"AE", "ARE", "784", "United Arab Emirates", false, "AEkk bbbc cccc cccc cccc ccc"},
	{"AL", "ALB", "008", "Albania", false, "ALkk bbbs sssx cccc cccc cccc cccc"},
	{"AO", "AGO", "024", "Angola", false, "AOkk bbbb ssss cccc cccc cccx x"},
	{"AT", "AUT", "040", "Austria", true, "ATkk bbbb bccc cccc cccc"},
	{"AZ", "AZE", "031", "Azerbaijan", false, "AZkk bbbb cccc cccc cccc cccc cccc"},
	{"BA", "BIH", "070", "Bosnia and Herzegovina", false, "BAkk bbbs sscc cccc ccxx"},
	{"BE", "BEL", "056", "Belgium", true, "BEkk bbbc cccc ccxx"},
	{"BF", "BFA", "854", "Burkina Faso", false, "BFkk bbbb bsss sscc cccc cccc ccxx"},
	{"BG", "BGR", "100", "Bulgaria", true, "BGkk bbbb ssss ttcc cccc cc"},
	{"BH", "BHR", "048", "Bahrain", false, "BHkk bbbb cccc cccc cccc cc"},
	{"BI", "BDI", "108", "Burundi", false, "BIkk bbbb bsss sscc cccc cccc cxx"},
	{"BJ", "BEN", "204", "Benin", false, "BJkk bbbb bbss sssc cccc cccc ccxx"},
	{"BR", "BRA", "076", "Brazil", false, "BRkk bbbb bbbb ssss sccc cccc ccct n"},
	{"BY", "BLR", "112", "Belarus", false, "BYkk bbbb cccc cccc cccc cccc cccc"},
	{"CH", "CHE", "756", "Switzerland", true, "CHkk bbbb bccc cccc cccc c"},
	{"CI", "CIV", "384", "Côte d'Ivoire", false, "CIkk bbbb bsss sscc cccc cccc ccxx"},
	{"CM", "CMR", "120", "Cameroon", false, "CMkk bbbb bsss sscc cccc cccc cxx"},
	{"CR", "CRI", "188", "Costa Rica", false, "CRkk 0bbb cccc cccc cccc cc"},
	{"CV", "CPV", "132", "Cabo Verde", false, "CVkk bbbb ssss cccc cccc cccx x"},
	{"CY", "CYP", "196", "Cyprus", true, "CYkk bbbs ssss cccc cccc cccc cccc"},
	{"CZ", "CZE", "203", "Czech Republic", true, "CZkk bbbb pppp ppcc cccc cccc"},
	{"DE", "DEU", "276", "Germany", true, "DEkk bbbb bbbb cccc cccc cc"},
	{"DJ", "DJI", "262", "Djibouti", false, "DJkk bbbb bsss sscc cccc cccc cxx"},
	{"DK", "DNK", "208", "Denmark", true, "DKkk bbbb cccc cccc cc"},
	{"DO", "DOM", "214", "Dominican Republic", false, "DOkk bbbb cccc cccc cccc cccc cccc"},
	{"DZ", "DZA", "012", "Algeria", false, "DZkk cccc cccc cccc cccc cccc cc"},
	{"EE", "EST", "233", "Estonia", true, "EEkk bbss cccc cccc cccx"},
	{"EG", "EGY", "818", "Egypt", false, "EGkk bbbb ssss cccc cccc cccc cccc c"},
	{"ES", "ESP", "724", "Spain", true, "ESkk bbbb ssss xxcc cccc cccc"},
	{"FI", "FIN", "246", "Finland", true, "FIkk bbbb bbcc cccc cx"},
	{"FK", "FLK", "238", "Falkland Islands", false, "FKkk bbcc cccc cccc cc"},
	{"FO", "FRO", "234", "Faroe Islands", false, "FOkk bbbb cccc cccc cx"},
	{"FR", "FRA", "250", "France", true, "FRkk bbbb bsss sscc cccc cccc cxx"},
	{"GB", "GBR", "826", "United Kingdom", true, "GBkk bbbb ssss sscc cccc cc"},
	{"GE", "GEO", "268", "Georgia", false, "GEkk bbcc cccc cccc cccc cc"},
	{"GI", "GIB", "292", "Gibraltar", true, "GIkk bbbb cccc cccc cccc ccc"},
	{"GL", "GRL", "304", "Greenland", false, "GLkk bbbb cccc cccc cc"},
	{"GR", "GRC", "300", "Greece", true, "GRkk bbbs sssc cccc cccc cccc ccc"},
	{"GT", "GTM", "320", "Guatemala", false, "GTkk bbbb mmtt cccc cccc cccc cccc"},
	{"HN", "HND", "340", "Honduras", false, "HNkk bbbb cccc cccc cccc cccc cccc"},
	{"HR", "HRV", "191", "Croatia", true, "HRkk bbbb bbbc cccc cccc c"},
	{"HU", "HUN", "348", "Hungary", true, "HUkk bbbs sssx cccc cccc cccc cccx"},
	{"IE", "IRL", "372", "Ireland", true, "IEkk qqqq ssss sscc cccc cc"},
	{"IL", "ISR", "376", "Israel", false, "ILkk bbbs sscc cccc cccc ccc"},
	{"IQ", "IRQ", "368", "Iraq", false, "IQkk bbbb sssc cccc cccc ccc"},
	{"IS", "ISL", "352", "Iceland", true, "ISkk bbss ttcc cccc nnnn nnnn nn"},
	{"IT", "ITA", "380", "Italy", true, "ITkk xbbb bbss sssc cccc cccc ccc"},
	{"JO", "JOR", "400", "Jordan", false, "JOkk bbbb ssss cccc cccc cccc cccc cc"},
	{"KW", "KWT", "414", "Kuwait", false, "KWkk bbbb cccc cccc cccc cccc cccc cc"},
	{"KZ", "KAZ", "398", "Kazakhstan", false, "KZkk bbbc cccc cccc cccc"},
	{"LB", "LBN", "422", "Lebanon", false, "LBkk bbbb cccc cccc cccc cccc cccc"},
	{"LC", "LCA", "662", "Saint Lucia", false, "LCkk bbbb cccc cccc cccc cccc cccc cccc"},
	{"LI", "LIE", "438", "Liechtenstein", true, "LIkk bbbb bccc cccc cccc c"},
	{"LT", "LTU", "440", "Lithuania", true, "LTkk bbbb bccc cccc cccc"},
	{"LU", "LUX", "442", "Luxembourg", true, "LUkk bbbc cccc cccc cccc"},
	{"LV", "LVA", "428", "Latvia", true, "LVkk bbbb cccc cccc cccc c"},
	{"LY", "LBY", "434", "Libya", false, "LYkk bbbs sscc cccc cccc cccc c"},
	{"MC", "MCO", "492", "Monaco", true, "MCkk bbbb bsss sscc cccc cccc cxx"},
	{"MD", "MDA", "498", "Moldova", false, "MDkk bbcc cccc cccc cccc cccc"},
	{"ME", "MNE", "499", "Montenegro", false, "MEkk bbbc cccc cccc cccc xx"},
	{"MG", "MDG", "450", "Madagascar", false, "MGkk bbbb bsss sscc cccc cccc cxx"},
	{"MK", "MKD", "807", "North Macedonia", false, "MKkk bbbc cccc cccc cxx"},
	{"ML", "MLI", "466", "Mali", false, "MLkk bbbb bsss sscc cccc cccc ccxx"},
	{"MN", "MNG", "496", "Mongolia", false, "MNkk bbbb cccc cccc cccc"},
	{"MR", "MRT", "478", "Mauritania", false, "MRkk bbbb bsss sscc cccc cccc cxx"},
	{"MT", "MLT", "470", "Malta", true, "MTkk bbbb ssss sccc cccc cccc cccc ccc"},
	{"MU", "MUS", "480", "Mauritius", false, "MUkk bbbb bbss cccc cccc cccc 000m mm"},
	{"NI", "NIC", "558", "Nicaragua", false, "NIkk bbbb cccc cccc cccc cccc cccc"},
	{"NL", "NLD", "528", "Netherlands", true, "NLkk bbbb cccc cccc cc"},
	{"NO", "NOR", "578", "Norway", true, "NOkk bbbb cccc ccx"},
	{"OM", "OMN", "512", "Oman", false, "OMkk bbbc cccc cccc cccc ccc"},
	{"PK", "PAK", "586", "Pakistan", false, "PKkk bbbb cccc cccc cccc cccc"},
	{"PL", "POL", "616", "Poland", true, "PLkk bbbs sssx cccc cccc cccc cccc"},
	{"PS", "PSE", "275", "Palestine", false, "PSkk bbbb cccc cccc cccc cccc cccc c"},
	{"PT", "PRT", "620", "Portugal", true, "PTkk bbbb ssss cccc cccc cccx x"},
	{"QA", "QAT", "634", "Qatar", false, "QAkk bbbb cccc cccc cccc cccc cccc c"},
	{"RO", "ROU", "642", "Romania", true, "ROkk bbbb cccc cccc cccc cccc"},
	{"RS", "SRB", "688", "Serbia", false, "RSkk bbbc cccc cccc cccc xx"},
	{"RU", "RUS", "643", "Russia", false, "RUkk bbbb bbbb bsss sscc cccc cccc cccc c"},
	{"SA", "SAU", "682", "Saudi Arabia", false, "SAkk bbcc cccc cccc cccc cccc"},
	{"SC", "SYC", "690", "Seychelles", false, "SCkk bbbb bbss cccc cccc cccc cccc mmm"},
	{"SD", "SDN", "729", "Sudan", false, "SDkk bbcc cccc cccc cc"},
	{"SE", "SWE", "752", "Sweden", true, "SEkk bbbc cccc cccc cccc cccc"},
	{"SI", "SVN", "705", "Slovenia", true, "SIkk bbbb bccc cccc cxx"},
	{"SK", "SVK", "703", "Slovakia", true, "SKkk bbbb pppp ppcc cccc cccc"},
	{"SM", "SMR", "674", "San Marino", true, "SMkk xbbb bbss sssc cccc cccc ccc"},
	{"SN", "SEN", "686", "Senegal", false, "SNkk bbbb bsss sscc cccc cccc ccxx"},
	{"SO", "SOM", "706", "Somalia", false, "SOkk bbbb sssc cccc cccc ccc"},
	{"ST", "STP", "678", "Sao Tome and Principe", false, "STkk bbbb ssss cccc cccc cccx x"},
	{"SV", "SLV", "222", "El Salvador", false, "SVkk bbbb cccc cccc cccc cccc cccc"},
	{"TL", "TLS", "626", "Timor-Leste", false, "TLkk bbbc cccc cccc cccc cxx"},
	{"TN", "TUN", "788", "Tunisia", false, "TNkk bbss sccc cccc cccc ccxx"},
	{"TR", "TUR", "792", "Turkey", false, "TRkk bbbb b0cc cccc cccc cccc cc"},
	{"UA", "UKR", "804", "Ukraine", false, "UAkk bbbb bbcc cccc cccc cccc cccc c"},
	{"VA", "VAT", "336", "Vatican City State", true, "VAkk bbbc cccc cccc cccc cc"},
	{"VG", "VGB", "092", "British Virgin Islands", false, "VGkk bbbb cccc cccc cccc cccc"},
	{"XK", "XKX", "", "Kosovo", false, "XKkk bbss cccc cccc ccxx"},
	{"YE", "YEM", "887", "Yemen", false, "YEkk bbbb ssss cccc cccc cccc cccc cc"},
}
