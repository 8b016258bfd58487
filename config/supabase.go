package config

import (
	"log"

	supa "github.com/supabase-community/supabase-go"
)

// NewSupabaseClient opens the process-wide store client. It is built once
// at startup and handed to the handlers; there is nothing to close on the
// client itself, shutdown is handled at the HTTP server.
func NewSupabaseClient(cfg *Config) *supa.Client {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		log.Fatalf("Failed to create Supabase client: %v", err)
	}
	return client
}
