package activities

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSeed reads the YAML activity catalog at the given path.
// The file is a mapping from activity name to activity record:
//
//	Chess Club:
//	  description: Learn strategies and compete in chess tournaments
//	  schedule: Fridays, 3:30 PM - 5:00 PM
//	  max_participants: 12
//	  participants:
//	    - michael@mergington.edu
//
// The seed is validated: names must be non-empty and no activity may list
// the same participant twice.
func LoadSeed(path string) (map[string]Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer f.Close()

	var catalog map[string]Activity
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}

	if err := validateSeed(catalog); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}

	// Normalize nil participant lists so they serialize as [] not null
	for name, activity := range catalog {
		if activity.Participants == nil {
			activity.Participants = []string{}
			catalog[name] = activity
		}
	}

	return catalog, nil
}

func validateSeed(catalog map[string]Activity) error {
	if len(catalog) == 0 {
		return fmt.Errorf("no activities defined")
	}

	for name, activity := range catalog {
		if name == "" {
			return fmt.Errorf("activity with empty name")
		}
		if activity.MaxParticipants < 0 {
			return fmt.Errorf("activity %q: max_participants must not be negative", name)
		}
		seen := make(map[string]bool, len(activity.Participants))
		for _, email := range activity.Participants {
			if email == "" {
				return fmt.Errorf("activity %q: empty participant email", name)
			}
			if seen[email] {
				return fmt.Errorf("activity %q: duplicate participant %s", name, email)
			}
			seen[email] = true
		}
	}
	return nil
}
