package export

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/remit-labs/remitgen/internal/model"
)

func sampleDataset() *model.Dataset {
	hired := model.NewTimestamp(time.Date(2023, 4, 12, 9, 30, 0, 0, time.UTC))
	registered := model.NewTimestamp(time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC))
	moved := model.NewTimestamp(time.Date(2024, 6, 20, 12, 45, 30, 0, time.UTC))

	return &model.Dataset{
		Agents: []model.Agent{
			{AgentID: 1, FirstName: "Dana", LastName: "Reyes", Position: "Manager",
				Email: "dana.reyes1@example.com", PhoneNumber: "+1-555-000-0001",
				AdminAccess: 1, HireDate: hired},
			{AgentID: 2, FirstName: "Omar", LastName: "Klein", Position: "Agent",
				Email: "omar.klein2@example.com", PhoneNumber: "+1-555-000-0002",
				AdminAccess: 0, HireDate: hired},
		},
		Clients: []model.Client{
			{ClientID: 1, FirstName: "Mia", LastName: "Okafor",
				Email: "mia.okafor3@example.com", PhoneNumber: "+1-555-000-0003",
				Country: "Nigeria", RegistrationDate: registered, IsActive: 1},
		},
		Transactions: []model.Transaction{
			{TransactionID: 1, TransactionCode: "TXN-A1B2C3D4", ClientID: 1, AgentID: 2,
				TransactionDate: moved, Amount: 250.75, Currency: "USD",
				DestinationCountry: "Nigeria", Fee: 12.5, TransactionStatus: "Completed",
				StatusDate: moved, Category: "Send", IsFraudulent: 0},
		},
	}
}

func TestWriteDatasetCSV(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()

	files, err := WriteDataset(ds, dir, []string{"csv"})
	require.NoError(t, err)
	require.Len(t, files, 3)

	f, err := os.Open(filepath.Join(dir, "Agents.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 agents
	assert.Equal(t, model.AgentColumns(), records[0])
	assert.Equal(t, ds.Agents[0].Row(), records[1])
	assert.Equal(t, ds.Agents[1].Row(), records[2])
}

func TestWriteDatasetEmptyCollections(t *testing.T) {
	dir := t.TempDir()
	ds := &model.Dataset{
		Agents:       []model.Agent{},
		Clients:      []model.Client{},
		Transactions: []model.Transaction{},
	}

	_, err := WriteDataset(ds, dir, []string{"all"})
	require.NoError(t, err)

	// CSV files keep their header row with zero records.
	data, err := os.ReadFile(filepath.Join(dir, "Transactions.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Join(model.TransactionColumns(), ","), lines[0])

	// JSON files hold an empty array, not null.
	jsonData, err := os.ReadFile(filepath.Join(dir, "Clients.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(jsonData)))
}

func TestJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()

	_, err := WriteDataset(ds, dir, []string{"json"})
	require.NoError(t, err)

	parsed, err := ReadDataset(dir)
	require.NoError(t, err)
	assert.Equal(t, ds, parsed)
}

func TestJSONUsesFourSpaceIndent(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteDataset(sampleDataset(), dir, []string{"json"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "Agents.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    {")
	assert.Contains(t, string(data), "\n        \"AgentID\": 1")
}

func TestManifest(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()

	files, err := WriteDataset(ds, dir, []string{"csv", "json"})
	require.NoError(t, err)
	require.Len(t, files, 6)

	m := NewManifest(42, ds, files)
	require.NoError(t, WriteManifest(dir, m))

	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	require.NoError(t, err)

	var parsed Manifest
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, m.RunID, parsed.RunID)
	assert.Equal(t, int64(42), parsed.Seed)
	assert.Equal(t, Counts{Agents: 2, Clients: 1, Transactions: 1}, parsed.Counts)
	require.Len(t, parsed.Files, 6)

	// Recorded checksums match the bytes on disk.
	for _, f := range parsed.Files {
		content, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err)
		sum := sha256.Sum256(content)
		assert.Equal(t, hex.EncodeToString(sum[:]), f.SHA256, "checksum mismatch for %s", f.Name)
	}
}
