// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form implements the answer-entry controller for one participant.

A Controller moves through four states:

	Unselected → Seeded → Editing → Saving
	                ↑__________________|

SelectParticipant always throws the current draft away and seeds a new one:
every slot of every date starts as "yes" with an empty note, then the
participant's saved rows overwrite it. The "yes" default lives only in the
draft; nothing is written until Save.

Save emits both slots of every date (2 × dates rows) and sends them as one
upsert. A failed save leaves the draft and the Editing state untouched so the
caller can retry.

# Notes

With NotePerDate a date has a single note. It is read from and written to
the am row; the pm row is always saved with no note. NotePerSlot keeps a note
on each row.
*/
package form
