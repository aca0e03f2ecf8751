package awsec2

import "strings"

var directionCodes = map[string]string{
	"north":     "n",
	"south":     "s",
	"east":      "e",
	"west":      "w",
	"central":   "c",
	"northeast": "ne",
	"northwest": "nw",
	"southeast": "se",
	"southwest": "sw",
}

// RegionKey derives the short code of a region name, us-east-1 -> use1
func RegionKey(name string) string {
	parts := strings.Split(name, "-")
	if len(parts) < 3 {
		return name
	}

	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, part := range parts[1 : len(parts)-1] {
		if code, ok := directionCodes[part]; ok {
			sb.WriteString(code)
			continue
		}
		sb.WriteString(part[:1])
	}
	sb.WriteString(parts[len(parts)-1])

	return sb.String()
}
