// Package till implements the core of a single-till point-of-sale for a
// food stall: an in-progress cart, a per-day ledger of committed checkouts,
// and the date-keyed storage scheme both share.
//
// All state lives in a local key-value store (see the kv package). Per local
// date D the till owns two slots: "orders_D" holds the day's checkout
// records and "cart_D" holds the in-progress cart. An empty cart is
// represented by key absence, never by a persisted empty array, so readers
// may treat "missing" and "empty" interchangeably.
package till
