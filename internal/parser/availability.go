package parser

import (
	"bufio"
	"os"
	"strings"

	"namelab/domain"
)

// ParseAvailabilityFile reads a line-oriented availability list
// (`<STATUS> <name>` per line) and returns lowercased name -> status.
// Unrecognized status tokens map to unknown.
func ParseAvailabilityFile(path string) (map[string]domain.Availability, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	out := map[string]domain.Availability{}

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var status domain.Availability
		switch strings.ToUpper(parts[0]) {
		case "AVAILABLE":
			status = domain.AvailabilityAvailable
		case "TAKEN":
			status = domain.AvailabilityTaken
		default:
			status = domain.AvailabilityUnknown
		}

		// the name may be multi-token
		name := strings.ToLower(strings.TrimSpace(strings.Join(parts[1:], " ")))
		if name != "" {
			out[name] = status
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
