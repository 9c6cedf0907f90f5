package constants

import "strings"

// Service is a warfighter service branch tagged on a request.
type Service string

const (
	ServiceArmy       Service = "Army"
	ServiceNavy       Service = "Navy"
	ServiceMarines    Service = "Marines"
	ServiceAirForce   Service = "Air Force"
	ServiceSpaceForce Service = "Space Force"
)

// JointUnknown is rendered when no service branch could be identified.
const JointUnknown = "Joint / Unknown"

var allServices = []Service{
	ServiceArmy,
	ServiceNavy,
	ServiceMarines,
	ServiceAirForce,
	ServiceSpaceForce,
}

func AllServices() []Service {
	out := make([]Service, len(allServices))
	copy(out, allServices)
	return out
}

// JoinServices renders a service set for storage/display.
// An empty set renders as JointUnknown.
func JoinServices(services []Service) string {
	if len(services) == 0 {
		return JointUnknown
	}
	parts := make([]string, len(services))
	for i, s := range services {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// SplitServices parses a stored service string back into a set.
// JointUnknown and unrecognized labels yield an empty set.
func SplitServices(s string) []Service {
	s = strings.TrimSpace(s)
	if s == "" || s == JointUnknown {
		return nil
	}
	var out []Service
	for _, part := range strings.Split(s, ",") {
		label := strings.TrimSpace(part)
		for _, svc := range allServices {
			if strings.EqualFold(label, string(svc)) {
				out = append(out, svc)
				break
			}
		}
	}
	return out
}
