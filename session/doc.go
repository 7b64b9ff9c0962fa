// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session keeps per-login state on the server.

A login creates a Session with a random ID, held in an in-memory go-cache
store that expires entries after the configured TTL. The client receives an
HS256 token carrying the session ID and username:

	mgr := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	sess, token, err := mgr.Create("alice")

	sess, err = mgr.Resolve(token) // ErrInvalidSession if expired or logged out
	sess.SetBaseline(scenario.Baseline{Profile: p, Cost: cost})

	mgr.Destroy(sess.ID)

Each session owns its baseline; nothing is shared between users or between
two logins of the same user. Sessions do not survive a restart.
*/
package session
