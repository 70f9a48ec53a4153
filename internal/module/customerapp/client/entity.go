package client

// Client is a registered customer from the promotores.clientes table.
type Client struct {
	ID       int64
	Nome     string
	Email    string
	Telefone *string
}
