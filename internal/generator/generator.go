package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/go-faker/faker/v4"

	"github.com/remit-labs/remitgen/internal/model"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// historyYears is the trailing window all generated timestamps fall in,
// ending at the moment the generator was created.
const historyYears = 5

type Config struct {
	NumAgents       int
	NumClients      int
	NumTransactions int

	// Seed 0 means fresh entropy per run. Any other value seeds both the
	// local source and the faker library so a run can be reproduced.
	Seed int64

	// Now anchors the end of the trailing timestamp window. Zero value
	// means the current time.
	Now time.Time
}

type Generator struct {
	cfg  Config
	rand *rand.Rand
	seq  int
	now  time.Time
}

func New(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		faker.SetRandomSource(rand.NewSource(seed))
	}

	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(seed)),
		now:  now.UTC().Truncate(time.Second),
	}
}

// Generate produces all three collections sized exactly to the configured
// counts. Agents and clients are generated first so transactions can
// reference their ID ranges.
func (g *Generator) Generate() *model.Dataset {
	windowStart := g.now.AddDate(-historyYears, 0, 0)

	agents := make([]model.Agent, 0, g.cfg.NumAgents)
	for i := 0; i < g.cfg.NumAgents; i++ {
		first := faker.FirstName()
		last := faker.LastName()
		agents = append(agents, model.Agent{
			AgentID:     i + 1,
			FirstName:   first,
			LastName:    last,
			Position:    g.choice(model.Positions),
			Email:       g.email(first, last),
			PhoneNumber: g.phone(),
			AdminAccess: g.rand.Intn(2),
			HireDate:    g.randomTimestamp(windowStart, g.now),
		})
	}

	clients := make([]model.Client, 0, g.cfg.NumClients)
	for i := 0; i < g.cfg.NumClients; i++ {
		first := faker.FirstName()
		last := faker.LastName()
		clients = append(clients, model.Client{
			ClientID:         i + 1,
			FirstName:        first,
			LastName:         last,
			Email:            g.email(first, last),
			PhoneNumber:      g.phone(),
			Country:          g.choice(countries),
			RegistrationDate: g.randomTimestamp(windowStart, g.now),
			IsActive:         g.rand.Intn(2),
		})
	}

	transactions := make([]model.Transaction, 0, g.cfg.NumTransactions)
	for i := 0; i < g.cfg.NumTransactions; i++ {
		transactions = append(transactions, model.Transaction{
			TransactionID:      i + 1,
			TransactionCode:    g.transactionCode(),
			ClientID:           g.randomRef(g.cfg.NumClients),
			AgentID:            g.randomRef(g.cfg.NumAgents),
			TransactionDate:    g.randomTimestamp(windowStart, g.now),
			Amount:             g.randomDecimal(10, 10000),
			Currency:           g.choice(model.Currencies),
			DestinationCountry: g.choice(countries),
			Fee:                g.randomDecimal(1, 50),
			TransactionStatus:  g.choice(model.TransactionStatuses),
			StatusDate:         g.randomTimestamp(windowStart, g.now),
			Category:           g.choice(model.Categories),
			IsFraudulent:       g.rand.Intn(2),
		})
	}

	return &model.Dataset{
		Agents:       agents,
		Clients:      clients,
		Transactions: transactions,
	}
}

// transactionCode returns "TXN-" plus 8 uppercase-alphanumeric characters.
// Codes are drawn independently and not checked for collisions even though
// the schema declares the column UNIQUE.
func (g *Generator) transactionCode() string {
	var b strings.Builder
	b.WriteString("TXN-")
	for i := 0; i < 8; i++ {
		b.WriteByte(codeAlphabet[g.rand.Intn(len(codeAlphabet))])
	}
	return b.String()
}

// randomTimestamp returns a timestamp uniformly distributed in [start, end],
// second precision.
func (g *Generator) randomTimestamp(start, end time.Time) model.Timestamp {
	span := end.Unix() - start.Unix()
	return model.NewTimestamp(time.Unix(start.Unix()+g.rand.Int63n(span+1), 0))
}

func (g *Generator) randomDecimal(min, max float64) float64 {
	v := min + g.rand.Float64()*(max-min)
	return math.Round(v*100) / 100
}

// randomRef draws uniformly from 1..n. A zero-sized referenced collection
// clamps to 1 so the field stays populated; the reference is never checked
// against actual rows.
func (g *Generator) randomRef(n int) int {
	if n < 1 {
		n = 1
	}
	return g.rand.Intn(n) + 1
}

func (g *Generator) choice(values []string) string {
	return values[g.rand.Intn(len(values))]
}

// email builds the address from the record's own name plus a sequence
// number, so addresses are unique by construction instead of relying on
// the faker library to never repeat.
func (g *Generator) email(first, last string) string {
	g.seq++
	return fmt.Sprintf("%s.%s%d@%s", emailLocal(first), emailLocal(last), g.seq, g.choice(emailDomains))
}

func (g *Generator) phone() string {
	g.seq++
	return fmt.Sprintf("+1-%03d-%03d-%04d", g.rand.Intn(800)+200, g.seq/10000, g.seq%10000)
}

func emailLocal(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, s)
}
