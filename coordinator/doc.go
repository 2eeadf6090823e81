// Package coordinator is the sole entry point this module exposes to an
// external caller (a UI layer's list/detail screens, view-models, and
// navigation are out of scope here). It builds the padded profit matrix,
// invokes the selected solver (Jonker–Volgenant by default), and filters
// the result down to real (non-padding) driver and shipment pairs.
package coordinator
