package iban

// swiftCodes maps a national bank code to its BIC, per country. Only Czech
// clearing codes are listed; a missing entry is the normal case.
var swiftCodes = map[string]map[string]string{
	"CZ": {
		"0100": "KOMBCZPP",
		"0300": "CEKOCZPP",
		"0600": "AGBACZPP",
		"0710": "CNBACZPP",
		"0800": "GIBACZPX",
		"2010": "FIOBCZPP",
		"2020": "BOTKCZPP",
		"2060": "CITFCZPP",
		"2070": "MPUBCZPP",
		"2100": "HYPOCZPP",
		"2250": "CTASCZ22",
		"2600": "CITICZPX",
		"2700": "BACXCZPP",
		"3030": "AIRACZPP",
		"3050": "BPPFCZP1",
		"3060": "BPKOCZPP",
		"3500": "INGBCZPP",
		"4000": "EXPNCZPP",
		"4300": "CMZRCZP1",
		"5500": "RZBCCZPP",
		"5800": "JTBPCZPP",
		"6000": "PMBPCZPP",
		"6100": "EQBKCZPP",
		"6200": "COBACZPX",
		"6210": "BREXCZPP",
		"6300": "GEBACZPP",
		"6700": "SUBACZPP",
		"6800": "VBOECZ2X",
		"7910": "DEUTCZPX",
		"8030": "GENOCZ21",
		"8040": "OBKLCZ2X",
		"8090": "CZEECZPP",
		"8150": "MIDLCZPP",
		"8220": "PAERCZP1",
		"8250": "BKCHCZPP",
	},
}

// LookupSwift returns the BIC registered for a country's national bank code,
// or "" when none is known.
func LookupSwift(country, bankCode string) string {
	return swiftCodes[country][bankCode]
}
