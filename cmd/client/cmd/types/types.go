package types

type contextKey string

// ClientAppKey is the context key under which root stores the initialized
// client.App for subcommands.
const ClientAppKey contextKey = "clientApp"
