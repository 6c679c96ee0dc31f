// Package sfclient provides the entry point for constructing SuperFaktura
// API clients that implement the sfapi.Client interface.
//
// Single-tenant deployments call InitDefault once at startup; it builds the
// process-wide default client from the environment (an optional .env file is
// honored) and leaves the default simply absent when the environment carries
// no credentials. Multi-tenant deployments call ForContext per call: calls
// carrying context credentials get a fresh client, calls without them fall
// back to the process default.
//
//	cli, err := sfclient.New(&sfapi.Config{Email: "me@example.com", APIKey: "key", Country: "cz"})
//	if err != nil { log.Fatal(err) }
//	result := cli.Invoices().Get(ctx, 1234)
package sfclient
