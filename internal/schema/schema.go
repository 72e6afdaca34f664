package schema

import (
	"fmt"
	"os"
)

// Dialect selects the DDL flavor for the downstream database.
type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func DialectFor(provider string) (Dialect, error) {
	switch provider {
	case "mysql":
		return MySQL, nil
	case "postgresql", "postgres":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported database provider: %s", provider)
	}
}

// DumpFileName is where the generate/schema commands write the DDL.
func DumpFileName(d Dialect) string {
	switch d {
	case Postgres:
		return "postgres_dump.sql"
	case SQLite:
		return "sqlite_dump.sql"
	default:
		return "mysql_dump.sql"
	}
}

// DDL returns the schema dump text for a dialect. The text is static:
// three CREATE TABLE statements, no INSERTs, independent of record counts.
func DDL(d Dialect) string {
	switch d {
	case Postgres:
		return postgresDDL
	case SQLite:
		return sqliteDDL
	default:
		return mysqlDDL
	}
}

// WriteDump writes the schema dump for a dialect, overwriting any
// previous file.
func WriteDump(path string, d Dialect) error {
	if err := os.WriteFile(path, []byte(DDL(d)), 0644); err != nil {
		return fmt.Errorf("failed to write schema dump: %w", err)
	}
	return nil
}

const mysqlDDL = `-- Schema for the synthetic remittance dataset.
-- Tables only; records are loaded separately.

CREATE TABLE Agents (
    AgentID INT NOT NULL,
    FirstName VARCHAR(50) NOT NULL,
    LastName VARCHAR(50) NOT NULL,
    Position ENUM('Agent', 'Manager') NOT NULL,
    Email VARCHAR(100) NOT NULL UNIQUE,
    PhoneNumber VARCHAR(30) NOT NULL UNIQUE,
    AdminAccess TINYINT(1) NOT NULL,
    HireDate DATETIME NOT NULL,
    PRIMARY KEY (AgentID)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE Clients (
    ClientID INT NOT NULL,
    FirstName VARCHAR(50) NOT NULL,
    LastName VARCHAR(50) NOT NULL,
    Email VARCHAR(100) NOT NULL UNIQUE,
    PhoneNumber VARCHAR(30) NOT NULL UNIQUE,
    Country VARCHAR(60) NOT NULL,
    RegistrationDate DATETIME NOT NULL,
    IsActive TINYINT(1) NOT NULL,
    PRIMARY KEY (ClientID)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE Transactions (
    TransactionID INT NOT NULL,
    TransactionCode VARCHAR(12) NOT NULL UNIQUE,
    ClientID INT NOT NULL,
    AgentID INT NOT NULL,
    TransactionDate DATETIME NOT NULL,
    Amount DECIMAL(10,2) NOT NULL,
    Currency CHAR(3) NOT NULL,
    DestinationCountry VARCHAR(60) NOT NULL,
    Fee DECIMAL(5,2) NOT NULL,
    TransactionStatus ENUM('Completed', 'Pending', 'Failed', 'Cancelled') NOT NULL,
    StatusDate DATETIME NOT NULL,
    Category ENUM('Send', 'Receive', 'ME') NOT NULL,
    IsFraudulent TINYINT(1) NOT NULL,
    PRIMARY KEY (TransactionID),
    FOREIGN KEY (ClientID) REFERENCES Clients(ClientID),
    FOREIGN KEY (AgentID) REFERENCES Agents(AgentID)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

const postgresDDL = `-- Schema for the synthetic remittance dataset.
-- Tables only; records are loaded separately.

CREATE TABLE Agents (
    AgentID INT NOT NULL,
    FirstName VARCHAR(50) NOT NULL,
    LastName VARCHAR(50) NOT NULL,
    Position VARCHAR(10) NOT NULL CHECK (Position IN ('Agent', 'Manager')),
    Email VARCHAR(100) NOT NULL UNIQUE,
    PhoneNumber VARCHAR(30) NOT NULL UNIQUE,
    AdminAccess SMALLINT NOT NULL,
    HireDate TIMESTAMP NOT NULL,
    PRIMARY KEY (AgentID)
);

CREATE TABLE Clients (
    ClientID INT NOT NULL,
    FirstName VARCHAR(50) NOT NULL,
    LastName VARCHAR(50) NOT NULL,
    Email VARCHAR(100) NOT NULL UNIQUE,
    PhoneNumber VARCHAR(30) NOT NULL UNIQUE,
    Country VARCHAR(60) NOT NULL,
    RegistrationDate TIMESTAMP NOT NULL,
    IsActive SMALLINT NOT NULL,
    PRIMARY KEY (ClientID)
);

CREATE TABLE Transactions (
    TransactionID INT NOT NULL,
    TransactionCode VARCHAR(12) NOT NULL UNIQUE,
    ClientID INT NOT NULL,
    AgentID INT NOT NULL,
    TransactionDate TIMESTAMP NOT NULL,
    Amount DECIMAL(10,2) NOT NULL,
    Currency CHAR(3) NOT NULL,
    DestinationCountry VARCHAR(60) NOT NULL,
    Fee DECIMAL(5,2) NOT NULL,
    TransactionStatus VARCHAR(10) NOT NULL CHECK (TransactionStatus IN ('Completed', 'Pending', 'Failed', 'Cancelled')),
    StatusDate TIMESTAMP NOT NULL,
    Category VARCHAR(10) NOT NULL CHECK (Category IN ('Send', 'Receive', 'ME')),
    IsFraudulent SMALLINT NOT NULL,
    PRIMARY KEY (TransactionID),
    FOREIGN KEY (ClientID) REFERENCES Clients(ClientID),
    FOREIGN KEY (AgentID) REFERENCES Agents(AgentID)
);
`

const sqliteDDL = `-- Schema for the synthetic remittance dataset.
-- Tables only; records are loaded separately.

CREATE TABLE Agents (
    AgentID INTEGER NOT NULL,
    FirstName TEXT NOT NULL,
    LastName TEXT NOT NULL,
    Position TEXT NOT NULL CHECK (Position IN ('Agent', 'Manager')),
    Email TEXT NOT NULL UNIQUE,
    PhoneNumber TEXT NOT NULL UNIQUE,
    AdminAccess INTEGER NOT NULL,
    HireDate TEXT NOT NULL,
    PRIMARY KEY (AgentID)
);

CREATE TABLE Clients (
    ClientID INTEGER NOT NULL,
    FirstName TEXT NOT NULL,
    LastName TEXT NOT NULL,
    Email TEXT NOT NULL UNIQUE,
    PhoneNumber TEXT NOT NULL UNIQUE,
    Country TEXT NOT NULL,
    RegistrationDate TEXT NOT NULL,
    IsActive INTEGER NOT NULL,
    PRIMARY KEY (ClientID)
);

CREATE TABLE Transactions (
    TransactionID INTEGER NOT NULL,
    TransactionCode TEXT NOT NULL UNIQUE,
    ClientID INTEGER NOT NULL,
    AgentID INTEGER NOT NULL,
    TransactionDate TEXT NOT NULL,
    Amount REAL NOT NULL,
    Currency TEXT NOT NULL,
    DestinationCountry TEXT NOT NULL,
    Fee REAL NOT NULL,
    TransactionStatus TEXT NOT NULL CHECK (TransactionStatus IN ('Completed', 'Pending', 'Failed', 'Cancelled')),
    StatusDate TEXT NOT NULL,
    Category TEXT NOT NULL CHECK (Category IN ('Send', 'Receive', 'ME')),
    IsFraudulent INTEGER NOT NULL,
    PRIMARY KEY (TransactionID),
    FOREIGN KEY (ClientID) REFERENCES Clients(ClientID),
    FOREIGN KEY (AgentID) REFERENCES Agents(AgentID)
);
`
