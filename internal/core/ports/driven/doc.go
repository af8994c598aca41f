// Package driven defines the outbound ports: the interfaces the core
// services require from infrastructure adapters (GitHub API access, token
// exchange, session persistence, configuration).
package driven
