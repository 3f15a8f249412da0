package till

import (
	"log"

	"github.com/yatai/till/kv"
)

// MigrateLegacyKeys copies data stored under a stale UTC-dated key into the
// local-dated key. It must run once before any read.
//
// An earlier storage scheme keyed orders and cart by the UTC date. Near
// local midnight the two date strings diverge, and a local-only lookup
// would show an empty ledger for hours. When the local-keyed slot is absent
// and the UTC-keyed slot holds a value, the value is copied verbatim; the
// source is never deleted. Running it again is a no-op once the local slot
// is populated.
func MigrateLegacyKeys(store kv.Store, local, utc Day) {
	if local == utc {
		return
	}
	migrateKey(store, OrdersKey(local), OrdersKey(utc))
	migrateKey(store, CartKey(local), CartKey(utc))
}

func migrateKey(store kv.Store, localKey, utcKey string) {
	if _, ok := store.Get(localKey); ok {
		return
	}
	value, ok := store.Get(utcKey)
	if !ok {
		return
	}
	if err := store.Set(localKey, value); err != nil {
		log.Printf("legacy key migration %q -> %q failed: %v", utcKey, localKey, err)
		return
	}
	log.Printf("migrated legacy %q into %q", utcKey, localKey)
}
