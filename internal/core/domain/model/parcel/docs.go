// Package parcel contains the Parcel aggregate, its lifecycle state machine
// and the kind-dependent value objects.
//
// A parcel is created PENDING, becomes IN_TRANSIT through a successful
// assignment, and ends DELIVERED or CANCELLED. FRAGILE parcels require
// handling instructions; REFRIGERATED parcels require a TemperatureRange.
package parcel
