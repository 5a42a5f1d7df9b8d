package activities

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeSeedFile(t, `
Chess Club:
  description: Learn strategies and compete in chess tournaments
  schedule: Fridays, 3:30 PM - 5:00 PM
  max_participants: 12
  participants:
    - michael@mergington.edu
    - daniel@mergington.edu
Gym Class:
  description: Physical education and sports activities
  schedule: Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM
  max_participants: 30
`)

	catalog, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	chess := catalog["Chess Club"]
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	// An activity without a participants key gets an empty list, not nil
	gym := catalog["Gym Class"]
	assert.NotNil(t, gym.Participants)
	assert.Empty(t, gym.Participants)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSeed_InvalidYAML(t *testing.T) {
	path := writeSeedFile(t, "Chess Club: [not a record")
	_, err := LoadSeed(path)
	assert.Error(t, err)
}

func TestLoadSeed_Empty(t *testing.T) {
	path := writeSeedFile(t, "{}")
	_, err := LoadSeed(path)
	assert.ErrorContains(t, err, "no activities")
}

func TestLoadSeed_DuplicateParticipant(t *testing.T) {
	path := writeSeedFile(t, `
Chess Club:
  description: d
  schedule: s
  max_participants: 12
  participants:
    - michael@mergington.edu
    - michael@mergington.edu
`)
	_, err := LoadSeed(path)
	assert.ErrorContains(t, err, "duplicate participant")
}

func TestLoadSeed_NegativeMaxParticipants(t *testing.T) {
	path := writeSeedFile(t, `
Chess Club:
  description: d
  schedule: s
  max_participants: -1
`)
	_, err := LoadSeed(path)
	assert.ErrorContains(t, err, "max_participants")
}
