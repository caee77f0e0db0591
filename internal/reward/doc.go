// Package reward provides the treasure reward types and the parsing of
// free-form reward text into a median gold value.
//
// Wiki tables describe an item's payout as a textual low-high range such as
// "1,000 – 2,500". The reward package reduces that text to the range midpoint
// and carries the result through the rest of the export as an Entry.
package reward
