package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/remit-labs/remitgen/internal/model"
)

// File describes one written export file, recorded in the manifest.
type File struct {
	Name    string `yaml:"name"`
	Format  string `yaml:"format"`
	Records int    `yaml:"records"`
	SHA256  string `yaml:"sha256"`
}

// WriteDataset serializes all three collections into dir, one file per
// collection per requested format. Existing files are overwritten.
func WriteDataset(ds *model.Dataset, dir string, formats []string) ([]File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	agentRows := make([][]string, 0, len(ds.Agents))
	for _, a := range ds.Agents {
		agentRows = append(agentRows, a.Row())
	}
	clientRows := make([][]string, 0, len(ds.Clients))
	for _, c := range ds.Clients {
		clientRows = append(clientRows, c.Row())
	}
	txRows := make([][]string, 0, len(ds.Transactions))
	for _, t := range ds.Transactions {
		txRows = append(txRows, t.Row())
	}

	var files []File

	if hasFormat(formats, "csv") {
		tables := []struct {
			name    string
			headers []string
			rows    [][]string
		}{
			{model.TableAgents, model.AgentColumns(), agentRows},
			{model.TableClients, model.ClientColumns(), clientRows},
			{model.TableTransactions, model.TransactionColumns(), txRows},
		}
		for _, table := range tables {
			f, err := writeCSV(dir, table.name+".csv", table.headers, table.rows)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
		}
	}

	if hasFormat(formats, "json") {
		docs := []struct {
			name    string
			value   interface{}
			records int
		}{
			{model.TableAgents, ds.Agents, len(ds.Agents)},
			{model.TableClients, ds.Clients, len(ds.Clients)},
			{model.TableTransactions, ds.Transactions, len(ds.Transactions)},
		}
		for _, doc := range docs {
			f, err := writeJSON(dir, doc.name+".json", doc.value, doc.records)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
		}
	}

	return files, nil
}

// ReadDataset re-parses a JSON export directory, the inverse of the JSON
// half of WriteDataset.
func ReadDataset(dir string) (*model.Dataset, error) {
	ds := &model.Dataset{}

	if err := readJSON(filepath.Join(dir, model.TableAgents+".json"), &ds.Agents); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, model.TableClients+".json"), &ds.Clients); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, model.TableTransactions+".json"), &ds.Transactions); err != nil {
		return nil, err
	}

	return ds, nil
}

func writeCSV(dir, name string, headers []string, rows [][]string) (File, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	// Header row goes first even when there are no records.
	if err := writer.Write(headers); err != nil {
		return File{}, fmt.Errorf("failed to write CSV header for %s: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return File{}, fmt.Errorf("failed to write CSV row for %s: %w", name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return File{}, fmt.Errorf("failed to flush CSV for %s: %w", name, err)
	}

	return writeFile(dir, name, "csv", len(rows), buf.Bytes())
}

func writeJSON(dir, name string, v interface{}, records int) (File, error) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return File{}, fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	return writeFile(dir, name, "json", records, data)
}

func writeFile(dir, name, format string, records int, data []byte) (File, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return File{}, fmt.Errorf("failed to write file %s: %w", path, err)
	}

	sum := sha256.Sum256(data)
	return File{
		Name:    name,
		Format:  format,
		Records: records,
		SHA256:  hex.EncodeToString(sum[:]),
	}, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func hasFormat(formats []string, want string) bool {
	for _, f := range formats {
		if f == want || f == "all" {
			return true
		}
	}
	return false
}
