// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls implements the poll store, vote recording, admin overrides and
the share-link codec on top of a db.Backend.

# Persisted keys

	polls_v1              JSON array of polls
	voted_polls_v1        JSON array of poll ids the device voted on
	voted_choice_<pollId> option id the device chose
	voted_devices_<pollId> JSON array of device ids that voted, cleared on reset

Device markers for a named device are stored under "device:<id>:" + key.

# Observers

Every Save notifies subscribers registered with Subscribe. Views reload on
notification; between a write and the reload a view may show stale data.

# Share links

	<origin>/import?data=<percent-encoded JSON poll>

Importing a poll whose id already exists overwrites it without merging.
*/
package polls
