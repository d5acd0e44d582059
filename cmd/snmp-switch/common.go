package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/minionsoliver/snmp-switch/alias"
	"github.com/minionsoliver/snmp-switch/session"
)

// hostError marks a host that failed name resolution before any SNMP
// traffic was sent. main prints it without the ERROR prefix.
type hostError struct {
	host string
}

func (e *hostError) Error() string {
	return "Unknown host: " + e.host
}

// setup resolves the host, loads the alias table and connects a session.
func setup(host string) (*session.Client, alias.Table, error) {
	if _, err := net.LookupHost(host); err != nil {
		return nil, nil, &hostError{host: host}
	}

	aliases, err := alias.Load(aliasFile)
	if err != nil {
		return nil, nil, err
	}

	client := session.NewClient(buildSessionOptions(host)...)
	if err := client.Connect(); err != nil {
		return nil, nil, err
	}

	printVerbose("Connected to %s:%d", host, port)
	return client, aliases, nil
}

// buildSessionOptions builds session options from the current configuration.
func buildSessionOptions(host string) []session.Option {
	opts := []session.Option{
		session.WithTarget(host),
		session.WithPort(port),
		session.WithCommunity(community),
		session.WithTimeout(timeout),
		session.WithRetries(retries),
	}
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, session.WithLogger(logger))
	}
	return opts
}

// printVerbose prints a message to stderr if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
