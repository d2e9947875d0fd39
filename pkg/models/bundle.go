package models

type Bundle struct {
	Name    string
	Credits int
	Price   int
}

// Bundles is ordered by size, smallest first.
var Bundles = []Bundle{
	{Name: "nano", Credits: 50, Price: 2},
	{Name: "micro", Credits: 200, Price: 10},
	{Name: "small", Credits: 550, Price: 25},
	{Name: "medium", Credits: 1200, Price: 50},
	{Name: "large", Credits: 2600, Price: 100},
	{Name: "enterprise", Credits: 14000, Price: 500},
}

// RecommendBundle picks the smallest bundle that covers credits.
// Anything larger than every bundle falls back to the biggest one.
func RecommendBundle(credits int) Bundle {
	for _, b := range Bundles {
		if credits <= b.Credits {
			return b
		}
	}
	return Bundles[len(Bundles)-1]
}

func LookupBundle(name string) (Bundle, bool) {
	for _, b := range Bundles {
		if b.Name == name {
			return b, true
		}
	}
	return Bundle{}, false
}
