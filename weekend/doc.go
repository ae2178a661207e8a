// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package weekend implements the single-month, date-only answer flow.

Candidate dates are every Saturday and Sunday of a month and carry no am/pm
split. Participants submit by name; the name is upserted into the registry
and only dates with an answer are stored, keyed by (participant, date).
*/
package weekend
