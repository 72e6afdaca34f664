package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	orig := NewTimestamp(time.Date(2022, 11, 3, 14, 25, 9, 0, time.UTC))

	data, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.Equal(t, `"2022-11-03T14:25:09"`, string(data))

	var parsed Timestamp
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, orig.Equal(parsed.Time))
}

func TestTimestampTruncatesSubsecond(t *testing.T) {
	ts := NewTimestamp(time.Date(2022, 11, 3, 14, 25, 9, 987654321, time.UTC))
	assert.Equal(t, "2022-11-03T14:25:09", ts.String())
}

func TestRowsMatchColumnOrder(t *testing.T) {
	ts := NewTimestamp(time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC))

	agent := Agent{AgentID: 7, FirstName: "Ida", LastName: "Novak", Position: "Agent",
		Email: "ida.novak7@example.com", PhoneNumber: "+1-555-000-0007", AdminAccess: 1, HireDate: ts}
	assert.Len(t, agent.Row(), len(AgentColumns()))
	assert.Len(t, agent.Values(), len(AgentColumns()))
	assert.Equal(t, "7", agent.Row()[0])
	assert.Equal(t, "2023-05-01T08:00:00", agent.Row()[len(agent.Row())-1])

	client := Client{ClientID: 3, FirstName: "Tom", LastName: "Abara",
		Email: "tom.abara3@example.com", PhoneNumber: "+1-555-000-0003",
		Country: "Kenya", RegistrationDate: ts, IsActive: 0}
	assert.Len(t, client.Row(), len(ClientColumns()))
	assert.Len(t, client.Values(), len(ClientColumns()))

	tx := Transaction{TransactionID: 9, TransactionCode: "TXN-00AA11BB", ClientID: 3, AgentID: 7,
		TransactionDate: ts, Amount: 1234.5, Currency: "GBP", DestinationCountry: "Kenya",
		Fee: 2.25, TransactionStatus: "Failed", StatusDate: ts, Category: "ME", IsFraudulent: 1}
	assert.Len(t, tx.Row(), len(TransactionColumns()))
	assert.Len(t, tx.Values(), len(TransactionColumns()))

	// Decimals render with two places in tabular form.
	assert.Equal(t, "1234.50", tx.Row()[5])
	assert.Equal(t, "2.25", tx.Row()[8])
}

func TestJSONFieldNames(t *testing.T) {
	tx := Transaction{TransactionID: 1, TransactionCode: "TXN-ABCD1234"}

	data, err := json.Marshal(tx)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	for _, col := range TransactionColumns() {
		assert.Contains(t, m, col)
	}
}
