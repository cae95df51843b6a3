// Package config loads runtime configuration for the invctl command-line
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables (INVTRACK_SERVER, INVTRACK_TOKEN, INVTRACK_TIMEOUT).
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string       base URL of the inventory API
//	-t int          request timeout (seconds)
//	-token string   session token sent as "Authorization: Bearer <token>"
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:3000",
//	  "request_timeout": "10s"
//	}
//
// The token is never read from JSON.
package config
