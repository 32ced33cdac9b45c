package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidRoster(t *testing.T) {
	path := writeRoster(t, `{
		"officers": [
			{"id": "kirk", "name": "James Kirk", "user_level": 40, "user_power": 900, "ownership_state": "owned"},
			{"id": "spock", "name": "Spock", "user_level": 35, "user_power": 800, "synergy_id": "tos", "ownership_state": "target"}
		],
		"reservations": [
			{"officer_id": "spock", "reserved_for": "mining", "locked": true}
		]
	}`)

	f, err := Load(path)
	require.NoError(t, err)

	require.Len(t, f.Officers, 2)
	assert.Equal(t, "kirk", f.Officers[0].ID)
	assert.Equal(t, "tos", f.Officers[1].SynergyID)

	require.Len(t, f.Reservations, 1)
	assert.True(t, f.Reservations[0].Locked)
}

func TestLoad_ReservationsOptional(t *testing.T) {
	path := writeRoster(t, `{"officers": [{"id": "kirk", "name": "Kirk", "ownership_state": "owned"}]}`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, f.Reservations)
}

func TestLoad_EmptyOfficersRejected(t *testing.T) {
	path := writeRoster(t, `{"officers": []}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no officers")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeRoster(t, `{officers`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
