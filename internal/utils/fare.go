package utils

// AcFareMultiplier is applied on top of the base fare for AC coaches.
const AcFareMultiplier = 1.3

// Route describes one entry of the static route table.
type Route struct {
	Number   int
	Name     string
	BaseFare int64
}

var routes = []Route{
	{Number: 1, Name: "DHAKA-COX", BaseFare: 1200},
	{Number: 2, Name: "DHAKA-KHULNA", BaseFare: 800},
	{Number: 3, Name: "DHAKA-RANGPUR", BaseFare: 900},
}

// Routes returns a copy of the route table in menu order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// LookupRoute returns the route for number, if any.
func LookupRoute(number int) (Route, bool) {
	for _, r := range routes {
		if r.Number == number {
			return r, true
		}
	}
	return Route{}, false
}

// RouteName returns the display name of a route or "-" when unknown.
func RouteName(number int) string {
	if r, ok := LookupRoute(number); ok {
		return r.Name
	}
	return "-"
}

// BaseFare returns the per-seat fare of a route. Unknown routes cost 0.
func BaseFare(routeNumber int) int64 {
	if r, ok := LookupRoute(routeNumber); ok {
		return r.BaseFare
	}
	return 0
}

// ComputeFare returns the per-seat fare, truncated to whole Taka.
func ComputeFare(routeNumber int, isAC bool) int64 {
	base := BaseFare(routeNumber)
	if !isAC {
		return base
	}
	return int64(float64(base) * AcFareMultiplier)
}
