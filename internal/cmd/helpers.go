package cmd

import (
	"errors"
	"os"

	"github.com/fulmenhq/gofulmen/foundry"

	"github.com/fundiconnect/fundictl/internal/config"
	"github.com/fundiconnect/fundictl/internal/token"
	"github.com/fundiconnect/fundictl/pkg/apiclient"
	"github.com/fundiconnect/fundictl/pkg/output"
)

// newClient builds an API client from config. If a saved session exists
// its token is installed; callers that require authentication should use
// requireSession first.
func newClient(cfg *config.Config) (*apiclient.Client, *token.Session, error) {
	client, err := apiclient.New(apiclient.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
		RateBurst: cfg.API.RateBurst,
	})
	if err != nil {
		return nil, nil, exitError(foundry.ExitInvalidArgument, "Invalid API configuration", err)
	}

	sess, err := token.NewStore(cfg.Auth.TokenPath).Load()
	if err != nil {
		if errors.Is(err, token.ErrNoSession) {
			return client, nil, nil
		}
		return nil, nil, exitError(foundry.ExitFileReadError, "Failed to read saved session", err)
	}

	client.SetToken(sess.Token)
	return client, sess, nil
}

// requireSession is like newClient but fails when no session is saved.
func requireSession(cfg *config.Config) (*apiclient.Client, *token.Session, error) {
	client, sess, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, exitError(foundry.ExitInvalidArgument, "Not logged in", token.ErrNoSession)
	}
	return client, sess, nil
}

// newJSONLWriter creates a JSONL writer on stdout for the given viewer.
// The returned cleanup closes the writer.
func newJSONLWriter(viewer string) (*output.JSONLWriter, func()) {
	w := output.NewJSONLWriter(os.Stdout, viewer)
	return w, func() { _ = w.Close() }
}

// viewerID returns the user ID of the saved session, or empty when
// unauthenticated.
func viewerID(sess *token.Session) string {
	if sess == nil {
		return ""
	}
	return sess.UserID
}
