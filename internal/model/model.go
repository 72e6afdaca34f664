package model

import (
	"fmt"
	"strconv"
)

// Table names as created by the schema dump.
const (
	TableAgents       = "Agents"
	TableClients      = "Clients"
	TableTransactions = "Transactions"
)

var (
	Positions           = []string{"Agent", "Manager"}
	Currencies          = []string{"USD", "EUR", "GBP", "INR", "AUD", "CAD"}
	TransactionStatuses = []string{"Completed", "Pending", "Failed", "Cancelled"}
	Categories          = []string{"Send", "Receive", "ME"}
)

type Agent struct {
	AgentID     int       `json:"AgentID"`
	FirstName   string    `json:"FirstName"`
	LastName    string    `json:"LastName"`
	Position    string    `json:"Position"`
	Email       string    `json:"Email"`
	PhoneNumber string    `json:"PhoneNumber"`
	AdminAccess int       `json:"AdminAccess"`
	HireDate    Timestamp `json:"HireDate"`
}

type Client struct {
	ClientID         int       `json:"ClientID"`
	FirstName        string    `json:"FirstName"`
	LastName         string    `json:"LastName"`
	Email            string    `json:"Email"`
	PhoneNumber      string    `json:"PhoneNumber"`
	Country          string    `json:"Country"`
	RegistrationDate Timestamp `json:"RegistrationDate"`
	IsActive         int       `json:"IsActive"`
}

type Transaction struct {
	TransactionID      int       `json:"TransactionID"`
	TransactionCode    string    `json:"TransactionCode"`
	ClientID           int       `json:"ClientID"`
	AgentID            int       `json:"AgentID"`
	TransactionDate    Timestamp `json:"TransactionDate"`
	Amount             float64   `json:"Amount"`
	Currency           string    `json:"Currency"`
	DestinationCountry string    `json:"DestinationCountry"`
	Fee                float64   `json:"Fee"`
	TransactionStatus  string    `json:"TransactionStatus"`
	StatusDate         Timestamp `json:"StatusDate"`
	Category           string    `json:"Category"`
	IsFraudulent       int       `json:"IsFraudulent"`
}

// Dataset holds one full generation run. All three collections stay in
// memory until exported; there is no streaming path at this scale.
type Dataset struct {
	Agents       []Agent
	Clients      []Client
	Transactions []Transaction
}

// Column orders below define both the CSV header row and the insert
// column list. They must stay aligned with the Row/Values methods.

func AgentColumns() []string {
	return []string{"AgentID", "FirstName", "LastName", "Position", "Email", "PhoneNumber", "AdminAccess", "HireDate"}
}

func ClientColumns() []string {
	return []string{"ClientID", "FirstName", "LastName", "Email", "PhoneNumber", "Country", "RegistrationDate", "IsActive"}
}

func TransactionColumns() []string {
	return []string{"TransactionID", "TransactionCode", "ClientID", "AgentID", "TransactionDate", "Amount", "Currency",
		"DestinationCountry", "Fee", "TransactionStatus", "StatusDate", "Category", "IsFraudulent"}
}

func (a Agent) Row() []string {
	return []string{
		strconv.Itoa(a.AgentID),
		a.FirstName,
		a.LastName,
		a.Position,
		a.Email,
		a.PhoneNumber,
		strconv.Itoa(a.AdminAccess),
		a.HireDate.String(),
	}
}

func (a Agent) Values() []interface{} {
	return []interface{}{a.AgentID, a.FirstName, a.LastName, a.Position, a.Email, a.PhoneNumber, a.AdminAccess, a.HireDate}
}

func (c Client) Row() []string {
	return []string{
		strconv.Itoa(c.ClientID),
		c.FirstName,
		c.LastName,
		c.Email,
		c.PhoneNumber,
		c.Country,
		c.RegistrationDate.String(),
		strconv.Itoa(c.IsActive),
	}
}

func (c Client) Values() []interface{} {
	return []interface{}{c.ClientID, c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.Country, c.RegistrationDate, c.IsActive}
}

func (t Transaction) Row() []string {
	return []string{
		strconv.Itoa(t.TransactionID),
		t.TransactionCode,
		strconv.Itoa(t.ClientID),
		strconv.Itoa(t.AgentID),
		t.TransactionDate.String(),
		fmt.Sprintf("%.2f", t.Amount),
		t.Currency,
		t.DestinationCountry,
		fmt.Sprintf("%.2f", t.Fee),
		t.TransactionStatus,
		t.StatusDate.String(),
		t.Category,
		strconv.Itoa(t.IsFraudulent),
	}
}

func (t Transaction) Values() []interface{} {
	return []interface{}{t.TransactionID, t.TransactionCode, t.ClientID, t.AgentID, t.TransactionDate, t.Amount,
		t.Currency, t.DestinationCountry, t.Fee, t.TransactionStatus, t.StatusDate, t.Category, t.IsFraudulent}
}
