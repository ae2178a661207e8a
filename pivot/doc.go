// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pivot turns flat response rows into the aggregate grid.

Build produces a participant × date × slot matrix plus per date/slot counts of
"yes" and "maybe" votes. Cells with no saved row are unanswered and render as
"-"; they are never defaulted to a status.

A slot is highlighted when it has at least HighlightThreshold "yes" votes. A
date is highlighted when either of its slots is.

	p := pivot.Build(participants, dates, responses)
	for date, h := range p.Highlights() {
		...
	}

BuildDaily is the slot-less variant used by the weekend flow.
*/
package pivot
