// Package account contains the Account aggregate and its enumerations.
//
// An Account is either an ADMIN or a TRANSPORTER. Transporters additionally
// carry a TransporterProfile with an immutable specialty (STANDARD, FRAGILE,
// REFRIGERATED) and an availability status (AVAILABLE, ON_DELIVERY) governed
// by a two-state machine. The constructor collects every broken rule into a
// validation.Violations value instead of stopping at the first one.
package account
