package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-license-secret license key derivation secret
//	-webhook-secret webhook signature secret
//	-admin-token-key admin token signing key
//	-admin-token-issuer admin token issuer name
//	-billing-base-url billing provider base URL
//	-billing-api-key billing provider API key
//	-billing-timeout billing request timeout (e.g., "10s")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var licenseSecret string
	var webhookSecret string
	var adminTokenKey string
	var adminTokenIssuer string
	var billingBaseURL string
	var billingAPIKey string
	var billingTimeout time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&licenseSecret, "license-secret", "", "License key derivation secret")
	flag.StringVar(&webhookSecret, "webhook-secret", "", "Webhook signature secret")
	flag.StringVar(&adminTokenKey, "admin-token-key", "", "Admin token signing key")
	flag.StringVar(&adminTokenIssuer, "admin-token-issuer", "", "Admin token issuer")
	flag.StringVar(&billingBaseURL, "billing-base-url", "", "Billing provider base URL")
	flag.StringVar(&billingAPIKey, "billing-api-key", "", "Billing provider API key")
	flag.DurationVar(&billingTimeout, "billing-timeout", 0, "Billing request timeout (e.g., 10s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LicenseSecret:    licenseSecret,
			WebhookSecret:    webhookSecret,
			AdminTokenKey:    adminTokenKey,
			AdminTokenIssuer: adminTokenIssuer,
		},
		Billing: Billing{
			BaseURL:        billingBaseURL,
			APIKey:         billingAPIKey,
			RequestTimeout: billingTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		RateLimit:    RateLimit{},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
