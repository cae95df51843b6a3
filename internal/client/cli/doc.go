// Package cli implements invctl, the command-line client for the inventory
// API.
//
// Usage:
//
//	invctl [-a url] [-t seconds] [-token token] <command> [args]
//
// Commands:
//
//	signup                      create an account and print a session token
//	login                       print a session token for existing credentials
//	list [-search s] [-severity s] [-stage s] [-type s] [-deployment s]
//	get <id>
//	add [key=value ...]         fields from arguments, or a JSON object on stdin
//	update <id> [key=value ...]
//	delete <id>
//
// Inventory commands need a token from -token or INVTRACK_TOKEN. Prompts go
// to stderr so the token printed by signup and login can be captured:
//
//	export INVTRACK_TOKEN=$(invctl login)
package cli
